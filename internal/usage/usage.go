package usage

import (
	"sync"
)

// Usage is the token consumption of one model call.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Counters accumulates token usage across a run. The pipeline driver owns
// one instance and feeds it the usage of every model call; a concurrent
// port must keep all Add calls serialized through this mutex.
type Counters struct {
	mu     sync.Mutex
	input  int64
	output int64
}

// Add records the usage of one model call.
func (c *Counters) Add(u Usage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input += u.InputTokens
	c.output += u.OutputTokens
}

// Totals returns the accumulated input and output token counts.
func (c *Counters) Totals() (input, output int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input, c.output
}

// Pricing holds the per-million-token prices and the USD->CZK rate.
// All three are injected configuration, never computed.
type Pricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
	USDCZKRate       float64
}

// Estimate is a run cost in both currencies.
type Estimate struct {
	USD float64
	CZK float64
}

// Cost converts accumulated token counts to money.
func (c *Counters) Cost(p Pricing) Estimate {
	input, output := c.Totals()
	return CostOf(input, output, p)
}

// CostOf prices an arbitrary token count. Used by both the live accountant
// and the pre-run estimator.
func CostOf(inputTokens, outputTokens int64, p Pricing) Estimate {
	usd := float64(inputTokens)*p.InputPerMillion/1_000_000 +
		float64(outputTokens)*p.OutputPerMillion/1_000_000
	return Estimate{
		USD: usd,
		CZK: usd * p.USDCZKRate,
	}
}
