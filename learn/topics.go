// Package learn holds the embedded learning content of the app: tutorial
// modules as markdown documents, and the quizzes that go with them.
package learn

import (
	"embed"
	"fmt"
)

//go:embed *.md
var content embed.FS

// Module is one tutorial of the learning track.
type Module struct {
	ID          string
	Title       string
	Description string
	file        string
}

// Modules lists the tutorial track in reading order.
var Modules = []Module{
	{"1", "What Is a Stock?", "Shares, ownership, and why companies sell them.", "01_what_is_a_stock.md"},
	{"2", "Stock Exchanges", "Where shares change hands: BSE, NSE and friends.", "02_stock_exchanges.md"},
	{"3", "Primary and Secondary Markets", "IPOs versus everyday trading.", "03_primary_secondary_markets.md"},
	{"4", "Reading a Stock Quote", "LTP, open, high, low, close and volume.", "04_reading_a_quote.md"},
	{"5", "Market Depth", "What the bid/ask ladder tells you.", "05_market_depth.md"},
	{"6", "Placing an Order", "Order types and what happens after you submit.", "06_placing_orders.md"},
	{"7", "Average Cost Basis", "How buying in tranches changes your break-even.", "07_cost_basis.md"},
	{"8", "Diversification", "Why you should not bet the farm on one ticker.", "08_diversification.md"},
}

// Get returns the module with this id.
func Get(id string) (Module, bool) {
	for _, m := range Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// Content returns the markdown body of the module.
func (m Module) Content() (string, error) {
	b, err := content.ReadFile(m.file)
	if err != nil {
		return "", fmt.Errorf("tutorial %q not found: %w", m.ID, err)
	}
	return string(b), nil
}
