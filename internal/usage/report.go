package usage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report is the machine-readable cost record for one run.
type Report struct {
	Timestamp      time.Time `json:"timestamp"`
	Model          string    `json:"model"`
	DaysBack       int       `json:"days_back"`
	Feeds          []string  `json:"feeds"`
	ItemsCollected int       `json:"items_collected"`
	ItemsSelected  int       `json:"items_selected"`
	InputTokens    int64     `json:"input_tokens"`
	OutputTokens   int64     `json:"output_tokens"`
	InputPricePerM float64   `json:"input_price_per_million"`
	OutputPricePM  float64   `json:"output_price_per_million"`
	CostUSD        float64   `json:"cost_usd"`
	CostCZK        float64   `json:"cost_czk"`
	USDCZKRate     float64   `json:"usd_czk_rate"`
}

// BuildReport snapshots the counters into a record ready to serialize.
func BuildReport(c *Counters, p Pricing, model string, daysBack int, feeds []string, collected, selected int) Report {
	input, output := c.Totals()
	est := CostOf(input, output, p)
	return Report{
		Timestamp:      time.Now().UTC(),
		Model:          model,
		DaysBack:       daysBack,
		Feeds:          feeds,
		ItemsCollected: collected,
		ItemsSelected:  selected,
		InputTokens:    input,
		OutputTokens:   output,
		InputPricePerM: p.InputPerMillion,
		OutputPricePM:  p.OutputPerMillion,
		CostUSD:        est.USD,
		CostCZK:        est.CZK,
		USDCZKRate:     p.USDCZKRate,
	}
}

// SummaryLine is the human-readable run summary embedded in page footers.
func (r Report) SummaryLine() string {
	return fmt.Sprintf("Model %s | sebráno %d, vybráno %d | tokeny: %d vstup / %d výstup | náklady: $%.4f (%.2f Kč)",
		r.Model, r.ItemsCollected, r.ItemsSelected, r.InputTokens, r.OutputTokens, r.CostUSD, r.CostCZK)
}

// Save writes the report as indented JSON.
func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cost report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cost report: %w", err)
	}
	return nil
}
