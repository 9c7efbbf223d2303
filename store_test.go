package investlab

import (
	"path/filepath"
	"testing"
)

func TestStore_FreshInstallDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	session, err := store.LoadSession()
	if err != nil || session != nil {
		t.Errorf("LoadSession() = %+v, %v, want nil session", session, err)
	}
	users, err := store.LoadUsers()
	if err != nil || len(users) != 0 {
		t.Errorf("LoadUsers() = %v, %v, want an empty directory", users, err)
	}
	lang, err := store.LoadLanguage()
	if err != nil || lang.Code != "en" {
		t.Errorf("LoadLanguage() = %v, %v, want English", lang, err)
	}
	progress, err := store.LoadProgress()
	if err != nil || len(progress.CompletedTutorials) != 0 {
		t.Errorf("LoadProgress() = %v, %v, want empty progress", progress, err)
	}
	portfolio, err := store.LoadPortfolio()
	if err != nil {
		t.Fatalf("LoadPortfolio() error = %v", err)
	}
	if !portfolio.Cash.Equal(Rupees(InitialVirtualCash)) || len(portfolio.Holdings) != 0 {
		t.Errorf("fresh portfolio = %+v, want %d cash and no holdings", portfolio, InitialVirtualCash)
	}
	raw, err := store.ReadRaw(KeyPortfolio)
	if err != nil || raw != nil {
		t.Errorf("ReadRaw() = %s, %v, want nil for an unwritten key", raw, err)
	}
}

func TestStore_SessionLifecycle(t *testing.T) {
	store := NewStore(t.TempDir())

	want := &Session{ID: "a-uuid", Email: "asha@example.com"}
	if err := store.SaveSession(want); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}
	got, err := store.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession() error = %v", err)
	}
	if *got != *want {
		t.Errorf("LoadSession() = %+v, want %+v", got, want)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	if got, _ := store.LoadSession(); got != nil {
		t.Errorf("LoadSession() after clear = %+v, want nil", got)
	}
	// Clearing twice is fine.
	if err := store.ClearSession(); err != nil {
		t.Errorf("second ClearSession() error = %v", err)
	}
}

func TestStore_RoundTrips(t *testing.T) {
	// The state directory is created on first save, not on open.
	store := NewStore(filepath.Join(t.TempDir(), "nested", "state"))

	users := Directory{"asha@example.com": {Name: "Asha", Email: "asha@example.com", Password: "secret123", Verified: true}}
	if err := store.SaveUsers(users); err != nil {
		t.Fatalf("SaveUsers() error = %v", err)
	}
	back, err := store.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	if got := back.Lookup("asha@example.com"); got == nil || *got != *users["asha@example.com"] {
		t.Errorf("LoadUsers() = %+v", got)
	}

	if err := store.SaveLanguage(Languages[1]); err != nil {
		t.Fatalf("SaveLanguage() error = %v", err)
	}
	if lang, _ := store.LoadLanguage(); lang != Languages[1] {
		t.Errorf("LoadLanguage() = %v, want %v", lang, Languages[1])
	}

	progress := NewProgress()
	progress.CompleteTutorial("1")
	progress.RecordQuizScore("basics-1", 4)
	if err := store.SaveProgress(progress); err != nil {
		t.Fatalf("SaveProgress() error = %v", err)
	}
	if got, _ := store.LoadProgress(); !got.Completed("1") || got.QuizScores["basics-1"] != 4 {
		t.Errorf("LoadProgress() = %+v", got)
	}

	portfolio := NewPortfolio(Rupees(InitialVirtualCash))
	portfolio, _ = portfolio.Apply(Buy, "TCS", 2, Rupees(3800.50))
	if err := store.SavePortfolio(portfolio); err != nil {
		t.Fatalf("SavePortfolio() error = %v", err)
	}
	got, err := store.LoadPortfolio()
	if err != nil {
		t.Fatalf("LoadPortfolio() error = %v", err)
	}
	if !got.Cash.Equal(portfolio.Cash) {
		t.Errorf("cash = %s, want %s", got.Cash, portfolio.Cash)
	}
	if h, ok := got.Holding("TCS"); !ok || h.Quantity != 2 || !h.AvgPrice.Equal(Rupees(3800.50)) {
		t.Errorf("holding = %+v, ok=%v", h, ok)
	}
}
