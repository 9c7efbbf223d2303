// Package renderer turns the app's domain types into markdown reports for
// the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/investlab/investlab"
)

// Quote renders a one-instrument summary: LTP, move against the previous
// close, the day's range and the traded volume.
func Quote(st *investlab.Stock) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s — %s\n\n", st.Ticker, st.Name)
	fmt.Fprintf(b, "**LTP**: %.2f (%+.2f%%)\n\n", st.Price, st.ChangePercent())
	fmt.Fprintf(b, "| Open | High | Low | Prev Close | Volume |\n")
	fmt.Fprintf(b, "|------|------|-----|------------|--------|\n")
	fmt.Fprintf(b, "| %.2f | %.2f | %.2f | %.2f | %d |\n", st.Open, st.High, st.Low, st.Close, st.Volume)
	return b.String()
}

// QuoteLine renders a compact single line for streaming output.
func QuoteLine(st *investlab.Stock) string {
	return fmt.Sprintf("%-10s %10.2f  %+6.2f%%  vol %d", st.Ticker, st.Price, st.ChangePercent(), st.Volume)
}

// Depth renders the bid/ask ladder of an instrument.
func Depth(st *investlab.Stock) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Market Depth — %s (LTP %.2f)\n\n", st.Ticker, st.Price)
	fmt.Fprintf(b, "| Bid | Qty | Ask | Qty |\n")
	fmt.Fprintf(b, "|-----|-----|-----|-----|\n")
	for i := range st.Depth.Bids {
		bid, ask := st.Depth.Bids[i], st.Depth.Asks[i]
		fmt.Fprintf(b, "| %.2f | %d | %.2f | %d |\n", bid.Price, bid.Quantity, ask.Price, ask.Quantity)
	}
	return b.String()
}

// History renders the sliding price-history window, most recent last.
func History(st *investlab.Stock, days int) string {
	points := st.History
	if days > 0 && days < len(points) {
		points = points[len(points)-days:]
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Price History — %s\n\n", st.Ticker)
	fmt.Fprintf(b, "| Date | Price |\n")
	fmt.Fprintf(b, "|------|-------|\n")
	for _, pt := range points {
		fmt.Fprintf(b, "| %s | %.2f |\n", pt.Date, pt.Price)
	}
	return b.String()
}

// Holdings renders the portfolio: every position valued at the market's
// current prices with its transient profit or loss, then cash and totals.
func Holdings(p investlab.Portfolio, m *investlab.Market) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Portfolio\n\n")
	if len(p.Holdings) == 0 {
		fmt.Fprintf(b, "No holdings yet.\n\n")
	} else {
		fmt.Fprintf(b, "| Ticker | Qty | Avg Cost | LTP | Value | P&L |\n")
		fmt.Fprintf(b, "|--------|-----|----------|-----|-------|-----|\n")
		for _, h := range p.Holdings {
			st := m.Get(h.Ticker)
			if st == nil {
				fmt.Fprintf(b, "| %s | %d | %s | - | - | - |\n", h.Ticker, h.Quantity, h.AvgPrice)
				continue
			}
			ltp := investlab.Rupees(st.Price)
			fmt.Fprintf(b, "| %s | %d | %s | %s | %s | %s |\n",
				h.Ticker, h.Quantity, h.AvgPrice, ltp, h.MarketValue(ltp), h.UnrealizedPL(ltp).SignedString())
		}
		fmt.Fprintf(b, "\n")
	}
	fmt.Fprintf(b, "- Cash: %s\n", p.Cash)
	fmt.Fprintf(b, "- Total value: %s\n", p.Value(m))
	fmt.Fprintf(b, "- Simulated P&L: %s\n", p.TotalPL(m).SignedString())
	return b.String()
}
