package investlab

import "iter"

// Order is a single price level of the synthetic book.
type Order struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Depth is the synthetic bid/ask ladder shown for an instrument. Bids walk
// down from the last traded price, asks walk up. It is regenerated wholesale
// on every tick, never incrementally updated.
type Depth struct {
	Bids []Order `json:"bids"`
	Asks []Order `json:"asks"`
}

// Point is one entry of an instrument's price history.
type Point struct {
	Date  Date    `json:"date"`
	Price float64 `json:"price"`
}

// Stock holds the simulated market state of one instrument. Records are
// created once at startup from seed data and mutated in place on every tick for
// the session's lifetime; nothing is persisted.
type Stock struct {
	Ticker string
	Name   string
	Price  float64 // last traded price (LTP)
	Open   float64
	High   float64 // running extrema, not re-derived from history
	Low    float64
	Close  float64 // previous day's close
	Volume int64
	// History is a fixed-size sliding window of daily prices,
	// most-recent-last. Its length never grows after seeding.
	History []Point
	Depth   Depth
}

// ChangePercent is the move of the last traded price against the previous close.
func (s *Stock) ChangePercent() float64 {
	if s.Close == 0 {
		return 0
	}
	return (s.Price - s.Close) / s.Close * 100
}

// Market holds the fixed set of simulated instruments.
type Market struct {
	stocks []*Stock
	index  map[string]*Stock // index stocks by ticker
}

// NewMarket returns a market tracking the given instruments.
func NewMarket(stocks ...*Stock) *Market {
	m := &Market{
		stocks: stocks,
		index:  make(map[string]*Stock, len(stocks)),
	}
	for _, s := range stocks {
		m.index[s.Ticker] = s
	}
	return m
}

func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the instrument with this ticker, or nil if unknown.
func (m *Market) Get(ticker string) *Stock { return m.index[ticker] }

// All iterates over the tracked instruments in seeding order.
func (m *Market) All() iter.Seq[*Stock] {
	return func(yield func(*Stock) bool) {
		for _, s := range m.stocks {
			if !yield(s) {
				return
			}
		}
	}
}

// seed describes one instrument of the fixed startup universe.
type seed struct {
	ticker    string
	name      string
	close     float64
	highBand  float64 // intraday band around the previous close
	lowBand   float64
	volBase   int64
	volSpread int64
}

var seeds = []seed{
	{"RELIANCE", "Reliance Industries Ltd.", 2850.30, 1.02, 0.98, 2_000_000, 5_000_000},
	{"TCS", "Tata Consultancy Services", 3800.50, 1.015, 0.985, 1_000_000, 3_000_000},
	{"HDFCBANK", "HDFC Bank Ltd.", 1520.75, 1.025, 0.975, 5_000_000, 10_000_000},
}

// historyDays is the length of the sliding price-history window.
const historyDays = 30

// SeedMarket builds the startup universe: three instruments priced at their
// previous close, with a 30 day synthetic history, a randomized open near
// the close, fixed intraday bands and a fresh book.
func SeedMarket(sim *Simulator) *Market {
	stocks := make([]*Stock, 0, len(seeds))
	for _, sd := range seeds {
		stocks = append(stocks, &Stock{
			Ticker:  sd.ticker,
			Name:    sd.name,
			Price:   sd.close,
			Close:   sd.close,
			Open:    round2(sd.close * (1 + (sim.rand.Float64()-0.5)*0.01)),
			High:    round2(sd.close * sd.highBand),
			Low:     round2(sd.close * sd.lowBand),
			Volume:  sd.volBase + sim.rand.Int64N(sd.volSpread),
			History: sim.GenerateHistory(sd.close, historyDays),
			Depth:   sim.GenerateDepth(sd.close),
		})
	}
	return NewMarket(stocks...)
}
