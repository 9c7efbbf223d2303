package investlab

import (
	"encoding/json"
	"errors"
	"fmt"
)

// InitialVirtualCash is the practice balance granted to every fresh portfolio.
const InitialVirtualCash = 100000

// Errors returned by Portfolio.Apply when a trade cannot be honored.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// TradeSide identifies the direction of a trade.
type TradeSide int

const (
	// Buy acquires shares against the cash balance.
	Buy TradeSide = iota
	// Sell releases shares back into cash.
	Sell
)

func (s TradeSide) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseTradeSide parses a string into a TradeSide.
func ParseTradeSide(s string) (TradeSide, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown trade side: %q", s)
	}
}

// Holding is a position in a single instrument. It exists only while its
// quantity is strictly positive.
type Holding struct {
	Ticker   string
	Quantity int64
	AvgPrice Money // quantity-weighted mean purchase price
}

// CostBasis returns the total amount paid for the position at average cost.
func (h Holding) CostBasis() Money { return h.AvgPrice.MulInt(h.Quantity) }

// MarketValue values the position at the given last traded price.
func (h Holding) MarketValue(ltp Money) Money { return ltp.MulInt(h.Quantity) }

// UnrealizedPL is the transient gain or loss against the average cost.
// It is derived on every render, never stored.
func (h Holding) UnrealizedPL(ltp Money) Money {
	return h.MarketValue(ltp).Sub(h.CostBasis())
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", h.Ticker)
	w.Append("quantity", h.Quantity)
	w.Append("avgPrice", h.AvgPrice)
	return w.MarshalJSON()
}

func (h *Holding) UnmarshalJSON(data []byte) error {
	var temp struct {
		Ticker   string `json:"ticker"`
		Quantity int64  `json:"quantity"`
		AvgPrice Money  `json:"avgPrice"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*h = Holding{Ticker: temp.Ticker, Quantity: temp.Quantity, AvgPrice: temp.AvgPrice}
	return nil
}

// Portfolio is a snapshot of virtual cash plus current holdings, keyed by
// ticker (unique). It is a value: Apply returns a new snapshot and the
// caller owns replacing its stored state.
type Portfolio struct {
	Cash     Money
	Holdings []Holding
}

// NewPortfolio returns a fresh portfolio holding only cash.
func NewPortfolio(cash Money) Portfolio {
	return Portfolio{Cash: cash}
}

// Holding returns the position for a ticker, if any.
func (p Portfolio) Holding(ticker string) (Holding, bool) {
	for _, h := range p.Holdings {
		if h.Ticker == ticker {
			return h, true
		}
	}
	return Holding{}, false
}

// clone returns a deep copy so Apply never aliases the receiver's holdings.
func (p Portfolio) clone() Portfolio {
	out := Portfolio{Cash: p.Cash}
	out.Holdings = make([]Holding, len(p.Holdings))
	copy(out.Holdings, p.Holdings)
	return out
}

// Apply executes a single trade against the snapshot and returns the updated
// snapshot. The receiver is never mutated.
//
// Validation lives here, not in the caller: a buy larger than the cash
// balance fails with ErrInsufficientFunds, a sell larger than the held
// quantity fails with ErrInsufficientShares. Cash and quantities therefore
// never go negative.
//
// A buy folds the trade into the weighted-average cost of the position; a
// sell leaves the average cost untouched and removes the position entirely
// when the quantity reaches exactly zero.
func (p Portfolio) Apply(side TradeSide, ticker string, quantity int64, price Money) (Portfolio, error) {
	if quantity <= 0 {
		return p, fmt.Errorf("invalid quantity %d: must be a positive number of shares", quantity)
	}
	if !price.IsPositive() {
		return p, fmt.Errorf("invalid price %s: must be positive", price)
	}

	total := price.MulInt(quantity)
	out := p.clone()

	switch side {
	case Buy:
		if total.GreaterThan(p.Cash) {
			return p, fmt.Errorf("buy %d %s for %s with only %s available: %w",
				quantity, ticker, total, p.Cash, ErrInsufficientFunds)
		}
		out.Cash = out.Cash.Sub(total)
		for i, h := range out.Holdings {
			if h.Ticker != ticker {
				continue
			}
			newQty := h.Quantity + quantity
			out.Holdings[i].AvgPrice = h.CostBasis().Add(total).DivInt(newQty)
			out.Holdings[i].Quantity = newQty
			return out, nil
		}
		out.Holdings = append(out.Holdings, Holding{Ticker: ticker, Quantity: quantity, AvgPrice: price})
		return out, nil

	case Sell:
		held, ok := p.Holding(ticker)
		if !ok || quantity > held.Quantity {
			return p, fmt.Errorf("sell %d %s holding only %d: %w",
				quantity, ticker, held.Quantity, ErrInsufficientShares)
		}
		out.Cash = out.Cash.Add(total)
		for i, h := range out.Holdings {
			if h.Ticker != ticker {
				continue
			}
			if h.Quantity == quantity {
				out.Holdings = append(out.Holdings[:i], out.Holdings[i+1:]...)
			} else {
				out.Holdings[i].Quantity = h.Quantity - quantity
			}
			break
		}
		return out, nil

	default:
		return p, fmt.Errorf("unknown trade side %d", side)
	}
}

// HoldingsValue values every position at the market's current prices.
// Positions whose instrument is unknown to the market contribute nothing.
func (p Portfolio) HoldingsValue(m *Market) Money {
	total := Rupees(0)
	for _, h := range p.Holdings {
		if st := m.Get(h.Ticker); st != nil {
			total = total.Add(h.MarketValue(Rupees(st.Price)))
		}
	}
	return total
}

// Value is the cash balance plus the market value of every position.
func (p Portfolio) Value(m *Market) Money {
	return p.Cash.Add(p.HoldingsValue(m))
}

// TotalPL is the simulated profit or loss against the initial virtual cash.
func (p Portfolio) TotalPL(m *Market) Money {
	return p.Value(m).Sub(Rupees(InitialVirtualCash))
}

func (p Portfolio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("cash", p.Cash)
	holdings := p.Holdings
	if holdings == nil {
		holdings = []Holding{}
	}
	w.Append("holdings", holdings)
	return w.MarshalJSON()
}

func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Cash     Money     `json:"cash"`
		Holdings []Holding `json:"holdings"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*p = Portfolio{Cash: temp.Cash, Holdings: temp.Holdings}
	return nil
}
