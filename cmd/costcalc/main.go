// Command costcalc estimates the cost of one run before it happens:
// given an expected item count and selection ratio, it prices the run
// from the configured per-call token averages. The live pipeline accounts
// for real usage; this is only a planning aid.
package main

import (
	"flag"
	"fmt"
	"os"

	"lexnews/internal/config"
	"lexnews/internal/usage"
)

func main() {
	n := flag.Int("n", 0, "expected number of feed items (N)")
	p := flag.Float64("p", 0, "expected selection ratio 0-1 (p)")
	flag.Parse()

	if *n <= 0 || *p < 0 || *p > 1 {
		fmt.Fprintln(os.Stderr, "usage: costcalc -n <items> -p <ratio 0-1>")
		os.Exit(2)
	}

	cfg := config.Load()
	est := cfg.Estimates

	selected := float64(*n) * *p
	inputTokens := int64(float64(*n)*float64(est.ClassifyIn) + selected*float64(est.ArticleIn+est.PostsIn))
	outputTokens := int64(float64(*n)*float64(est.ClassifyOut) + selected*float64(est.ArticleOut+est.PostsOut))

	cost := usage.CostOf(inputTokens, outputTokens, usage.Pricing{
		InputPerMillion:  cfg.InputPricePerM,
		OutputPerMillion: cfg.OutputPricePerM,
		USDCZKRate:       cfg.USDCZKRate,
	})

	fmt.Printf("Input tokens:  %d\n", inputTokens)
	fmt.Printf("Output tokens: %d\n", outputTokens)
	fmt.Printf("Odhad ceny:    $%.3f (%.2f Kč) / run\n", cost.USD, cost.CZK)
}
