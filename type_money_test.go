package investlab

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := Rupees(100.10)
	b := Rupees(0.20)

	if got, want := a.Add(b), Rupees(100.30); !got.Equal(want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := a.Sub(b), Rupees(99.90); !got.Equal(want) {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if got, want := b.MulInt(3), Rupees(0.60); !got.Equal(want) {
		t.Errorf("MulInt = %s, want %s", got, want)
	}
	if got, want := a.DivInt(2), Rupees(50.05); !got.Equal(want) {
		t.Errorf("DivInt = %s, want %s", got, want)
	}
}

// Exactness is the point of a decimal ledger: classic float residues must
// not appear.
func TestMoney_NoFloatResidue(t *testing.T) {
	sum := Rupees(0.1).Add(Rupees(0.2))
	if !sum.Equal(Rupees(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", sum)
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	sum := Money{}.Add(Rupees(5))
	if sum.Currency() != DefaultCurrency {
		t.Errorf("currency = %q, want %q", sum.Currency(), DefaultCurrency)
	}
	defer func() {
		if recover() == nil {
			t.Error("mismatched currencies did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoney_SignedString(t *testing.T) {
	if got := Rupees(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := Rupees(10).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("positive SignedString = %q, want a + prefix", got)
	}
	if got := Rupees(-10).SignedString(); strings.HasPrefix(got, "+") {
		t.Errorf("negative SignedString = %q, want no + prefix", got)
	}
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(Rupees(2850.30))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"currency":"INR","amount":2850.3}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(Rupees(2850.30)) {
		t.Errorf("Unmarshal() = %s, want %s", back, Rupees(2850.30))
	}
}
