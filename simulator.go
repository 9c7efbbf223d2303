package investlab

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// TickInterval is the cadence at which the market moves during a watch
// session.
const TickInterval = 2 * time.Second

// Simulator produces synthetic price series, ticks and order books with
// believable short-term randomness. There is no real data source.
//
// The random source and the clock are injectable so generation is
// reproducible in tests; NewSimulator seeds from the wall clock.
type Simulator struct {
	rand *rand.Rand
	now  func() time.Time
}

// NewSimulator returns a simulator seeded from the current time.
func NewSimulator() *Simulator {
	return NewSeededSimulator(uint64(time.Now().UnixNano()))
}

// NewSeededSimulator returns a deterministic simulator for the given seed.
func NewSeededSimulator(seed uint64) *Simulator {
	return &Simulator{
		rand: rand.New(rand.NewPCG(seed, seed)),
		now:  time.Now,
	}
}

// round2 rounds a price to two decimals, the tick size of the simulated market.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// GenerateHistory produces a synthetic daily price series of length days,
// starting days-1 calendar days ago and ending today. Each successive price
// moves by a uniform delta within ±1% of the initial price, floored at half
// the initial price to prevent runaway collapse.
func (s *Simulator) GenerateHistory(initialPrice float64, days int) []Point {
	history := make([]Point, 0, days)
	price := initialPrice
	today := DateOf(s.now())
	for i := days - 1; i >= 0; i-- {
		history = append(history, Point{Date: today.Add(-i), Price: round2(price)})
		price += (s.rand.Float64() - 0.5) * initialPrice * 0.02
		if price < initialPrice*0.5 {
			price = initialPrice * 0.5
		}
	}
	return history
}

// depthLevels is the number of price levels on each side of the book.
const depthLevels = 5

// GenerateDepth builds a fresh synthetic book around the given price: five
// bids starting at 99.8% of the price walking down, five asks starting at
// 100.2% walking up, with random level quantities in [50,550).
func (s *Simulator) GenerateDepth(price float64) Depth {
	bids := make([]Order, 0, depthLevels)
	asks := make([]Order, 0, depthLevels)
	bidPrice := price * 0.998
	askPrice := price * 1.002
	for i := 0; i < depthLevels; i++ {
		bids = append(bids, Order{Price: round2(bidPrice), Quantity: 50 + s.rand.IntN(500)})
		asks = append(asks, Order{Price: round2(askPrice), Quantity: 50 + s.rand.IntN(500)})
		bidPrice -= s.rand.Float64() * price * 0.0005
		askPrice += s.rand.Float64() * price * 0.0005
	}
	return Depth{Bids: bids, Asks: asks}
}

// Tick moves one instrument: a uniform price change within ±0.25%, rounded
// to two decimals, running high/low extrema, a random volume increment, a
// regenerated book, and the history window slid forward by one entry.
func (s *Simulator) Tick(st *Stock) {
	change := (s.rand.Float64() - 0.5) * st.Price * 0.005
	price := round2(st.Price + change)

	st.Price = price
	st.High = math.Max(st.High, price)
	st.Low = math.Min(st.Low, price)
	st.Volume += int64(s.rand.IntN(1000))
	st.Depth = s.GenerateDepth(price)
	if n := len(st.History); n > 0 {
		// Slide the fixed-size window: drop the oldest, append today.
		copy(st.History, st.History[1:])
		st.History[n-1] = Point{Date: DateOf(s.now()), Price: price}
	}
}

// TickAll moves every instrument of the market once.
func (s *Simulator) TickAll(m *Market) {
	for st := range m.All() {
		s.Tick(st)
	}
}

// Run ticks the whole market on a fixed cadence until the context is
// cancelled. onTick, if not nil, runs after each pass; it executes on the
// same goroutine as the updates, so there is a single mutator at a time.
func (s *Simulator) Run(ctx context.Context, m *Market, every time.Duration, onTick func(*Market)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.TickAll(m)
			if onTick != nil {
				onTick(m)
			}
		}
	}
}
