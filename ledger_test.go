package investlab

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestApply_BuyWeightedAverage(t *testing.T) {
	p := NewPortfolio(Rupees(InitialVirtualCash))

	p, err := p.Apply(Buy, "RELIANCE", 10, Rupees(100))
	if err != nil {
		t.Fatalf("first buy: %v", err)
	}
	p, err = p.Apply(Buy, "RELIANCE", 10, Rupees(200))
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}

	h, ok := p.Holding("RELIANCE")
	if !ok {
		t.Fatal("position not found after buys")
	}
	if h.Quantity != 20 {
		t.Errorf("quantity = %d, want 20", h.Quantity)
	}
	if want := Rupees(150); !h.AvgPrice.Equal(want) {
		t.Errorf("avg price = %s, want %s", h.AvgPrice, want)
	}
	if want := Rupees(InitialVirtualCash - 3000); !p.Cash.Equal(want) {
		t.Errorf("cash = %s, want %s", p.Cash, want)
	}
}

func TestApply_SellKeepsAveragePrice(t *testing.T) {
	p := NewPortfolio(Rupees(InitialVirtualCash))
	p, _ = p.Apply(Buy, "TCS", 10, Rupees(100))
	p, _ = p.Apply(Buy, "TCS", 10, Rupees(200))

	p, err := p.Apply(Sell, "TCS", 5, Rupees(180))
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	h, _ := p.Holding("TCS")
	if h.Quantity != 15 {
		t.Errorf("quantity = %d, want 15", h.Quantity)
	}
	if want := Rupees(150); !h.AvgPrice.Equal(want) {
		t.Errorf("avg price changed on sell: %s, want %s", h.AvgPrice, want)
	}
}

// Selling a full position back at the average cost must restore the exact
// initial cash balance, with no residue.
func TestApply_RoundTripRestoresCash(t *testing.T) {
	p := NewPortfolio(Rupees(InitialVirtualCash))
	p, _ = p.Apply(Buy, "RELIANCE", 10, Rupees(100))
	p, _ = p.Apply(Buy, "RELIANCE", 10, Rupees(200))

	p, err := p.Apply(Sell, "RELIANCE", 20, Rupees(150))
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if want := Rupees(InitialVirtualCash); !p.Cash.Equal(want) {
		t.Errorf("cash = %s, want %s", p.Cash, want)
	}
	if _, ok := p.Holding("RELIANCE"); ok {
		t.Error("position still present after selling to zero")
	}
	if len(p.Holdings) != 0 {
		t.Errorf("holdings = %v, want none", p.Holdings)
	}
}

func TestApply_Rejections(t *testing.T) {
	funded := NewPortfolio(Rupees(1000))
	funded, _ = funded.Apply(Buy, "TCS", 2, Rupees(100))

	tests := []struct {
		name     string
		side     TradeSide
		ticker   string
		quantity int64
		price    Money
		wantErr  error
	}{
		{"buy over cash", Buy, "TCS", 100, Rupees(100), ErrInsufficientFunds},
		{"sell unheld ticker", Sell, "HDFCBANK", 1, Rupees(100), ErrInsufficientShares},
		{"sell over held quantity", Sell, "TCS", 3, Rupees(100), ErrInsufficientShares},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := funded.Apply(tt.side, tt.ticker, tt.quantity, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Apply() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("zero quantity", func(t *testing.T) {
		if _, err := funded.Apply(Buy, "TCS", 0, Rupees(100)); err == nil {
			t.Error("Apply() accepted a zero quantity")
		}
	})
	t.Run("negative price", func(t *testing.T) {
		if _, err := funded.Apply(Buy, "TCS", 1, Rupees(-1)); err == nil {
			t.Error("Apply() accepted a negative price")
		}
	})
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	p := NewPortfolio(Rupees(InitialVirtualCash))
	p, _ = p.Apply(Buy, "TCS", 10, Rupees(100))

	if _, err := p.Apply(Buy, "TCS", 5, Rupees(200)); err != nil {
		t.Fatalf("buy: %v", err)
	}
	h, _ := p.Holding("TCS")
	if h.Quantity != 10 || !h.AvgPrice.Equal(Rupees(100)) {
		t.Errorf("receiver mutated: %+v", h)
	}
}

func TestTotalPL(t *testing.T) {
	m := NewMarket(&Stock{Ticker: "TCS", Price: 120})

	p := NewPortfolio(Rupees(InitialVirtualCash))
	p, _ = p.Apply(Buy, "TCS", 10, Rupees(100))

	// Cash went down 1000, the position is worth 1200.
	if want := Rupees(200); !p.TotalPL(m).Equal(want) {
		t.Errorf("TotalPL = %s, want %s", p.TotalPL(m), want)
	}
	h, _ := p.Holding("TCS")
	if want := Rupees(200); !h.UnrealizedPL(Rupees(120)).Equal(want) {
		t.Errorf("UnrealizedPL = %s, want %s", h.UnrealizedPL(Rupees(120)), want)
	}
}

func TestPortfolio_JSONRoundTrip(t *testing.T) {
	p := NewPortfolio(Rupees(InitialVirtualCash))
	p, _ = p.Apply(Buy, "RELIANCE", 3, Rupees(2850.30))

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Portfolio
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Cash.Equal(p.Cash) {
		t.Errorf("cash = %s, want %s", back.Cash, p.Cash)
	}
	h, ok := back.Holding("RELIANCE")
	if !ok || h.Quantity != 3 || !h.AvgPrice.Equal(Rupees(2850.30)) {
		t.Errorf("holding = %+v, ok=%v", h, ok)
	}
}

func TestParseTradeSide(t *testing.T) {
	if side, err := ParseTradeSide("buy"); err != nil || side != Buy {
		t.Errorf("ParseTradeSide(buy) = %v, %v", side, err)
	}
	if side, err := ParseTradeSide("sell"); err != nil || side != Sell {
		t.Errorf("ParseTradeSide(sell) = %v, %v", side, err)
	}
	if _, err := ParseTradeSide("short"); err == nil {
		t.Error("ParseTradeSide(short) accepted")
	}
}
