package investlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// State keys: one JSON file per key under the state directory. There is no
// schema versioning; a shape change silently invalidates old saved state.
const (
	KeySession   = "session"
	KeyUsers     = "users"
	KeyLanguage  = "language"
	KeyProgress  = "progress"
	KeyPortfolio = "portfolio"
)

// Keys lists every state key, in persisted-file order.
var Keys = []string{KeySession, KeyUsers, KeyLanguage, KeyProgress, KeyPortfolio}

// Store is the explicit local state store: load at startup, save on change.
// A missing file is a fresh install and yields the zero value of its key.
// It replaces the ambient browser-local storage of the original design with
// an object the caller passes around.
type Store struct {
	dir string
}

// NewStore returns a store over the given state directory. The directory is
// created lazily on the first save.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the state directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// load decodes the JSON file of a key into v. It reports whether the file
// existed.
func (s *Store) load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read state %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("could not decode state %q: %w", key, err)
	}
	return true, nil
}

// save encodes v as the JSON file of a key, creating the directory first.
func (s *Store) save(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create state directory %q: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write state %q: %w", key, err)
	}
	return nil
}

// ReadRaw returns the persisted JSON blob of a key, for inspection, or
// nil when the key has never been written.
func (s *Store) ReadRaw(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read state %q: %w", key, err)
	}
	return data, nil
}

// LoadSession returns the current session, or nil when logged out.
func (s *Store) LoadSession() (*Session, error) {
	var session Session
	ok, err := s.load(KeySession, &session)
	if err != nil || !ok {
		return nil, err
	}
	return &session, nil
}

// SaveSession persists the current session.
func (s *Store) SaveSession(session *Session) error {
	return s.save(KeySession, session)
}

// ClearSession logs the current user out. Clearing an absent session is fine.
func (s *Store) ClearSession() error {
	err := os.Remove(s.path(KeySession))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadUsers returns the credential directory, empty on a fresh install.
func (s *Store) LoadUsers() (Directory, error) {
	users := Directory{}
	if _, err := s.load(KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers persists the credential directory.
func (s *Store) SaveUsers(users Directory) error {
	return s.save(KeyUsers, users)
}

// LoadLanguage returns the display-language preference, English by default.
func (s *Store) LoadLanguage() (Language, error) {
	lang := Languages[0]
	if _, err := s.load(KeyLanguage, &lang); err != nil {
		return Language{}, err
	}
	return lang, nil
}

// SaveLanguage persists the display-language preference.
func (s *Store) SaveLanguage(lang Language) error {
	return s.save(KeyLanguage, lang)
}

// LoadProgress returns the learning progress, empty on a fresh install.
func (s *Store) LoadProgress() (Progress, error) {
	progress := NewProgress()
	if _, err := s.load(KeyProgress, &progress); err != nil {
		return Progress{}, err
	}
	return progress, nil
}

// SaveProgress persists the learning progress.
func (s *Store) SaveProgress(progress Progress) error {
	return s.save(KeyProgress, progress)
}

// LoadPortfolio returns the simulated portfolio. A fresh install starts
// with the initial virtual cash and no holdings.
func (s *Store) LoadPortfolio() (Portfolio, error) {
	portfolio := NewPortfolio(Rupees(InitialVirtualCash))
	if _, err := s.load(KeyPortfolio, &portfolio); err != nil {
		return Portfolio{}, err
	}
	return portfolio, nil
}

// SavePortfolio persists the simulated portfolio.
func (s *Store) SavePortfolio(portfolio Portfolio) error {
	return s.save(KeyPortfolio, portfolio)
}
