package investlab

import "testing"

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(l.Code)
		if err != nil {
			t.Errorf("ParseLanguage(%q) error = %v", l.Code, err)
		}
		if got != l {
			t.Errorf("ParseLanguage(%q) = %v, want %v", l.Code, got, l)
		}
	}
	if _, err := ParseLanguage("fr"); err == nil {
		t.Error("ParseLanguage(fr) accepted an unsupported code")
	}
}
