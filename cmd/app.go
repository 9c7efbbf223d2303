// Package cmd implements the CLI application of the investlab paper-trading app.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "auth")
	c.Register(&verifyCmd{}, "auth")
	c.Register(&loginCmd{}, "auth")
	c.Register(&logoutCmd{}, "auth")
	c.Register(&forgotCmd{}, "auth")
	c.Register(&resetCmd{}, "auth")

	c.Register(&quoteCmd{}, "market")
	c.Register(&depthCmd{}, "market")
	c.Register(&historyCmd{}, "market")
	c.Register(&watchCmd{}, "market")

	c.Register(&buyCmd{}, "portfolio")
	c.Register(&sellCmd{}, "portfolio")
	c.Register(&holdingsCmd{}, "portfolio")

	c.Register(&learnCmd{}, "learning")
	c.Register(&quizCmd{}, "learning")

	c.Register(&profileCmd{}, "profile")
	c.Register(&langCmd{}, "profile")
	c.Register(&stateCmd{}, "profile")
}

// Names returns every registered command name, for shell completion.
func Names() []string {
	return []string{
		"register", "verify", "login", "logout", "forgot", "reset",
		"quote", "depth", "history", "watch",
		"buy", "sell", "holdings",
		"learn", "quiz",
		"profile", "lang", "state",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateDir = flag.String("state-dir", defaultStateDir(), "Path to the local state directory")

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "investlab")
	}
	return ".investlab"
}

// OpenStore opens the local state store of the app.
func OpenStore() *investlab.Store {
	return investlab.NewStore(*stateDir)
}

// CurrentUser resolves the logged-in user from the persisted session.
func CurrentUser(store *investlab.Store) (*investlab.User, error) {
	session, err := store.LoadSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("not logged in, run `ivl login` first")
	}
	users, err := store.LoadUsers()
	if err != nil {
		return nil, err
	}
	user := users.Lookup(session.Email)
	if user == nil {
		return nil, fmt.Errorf("session user %q no longer exists, run `ivl login` again", session.Email)
	}
	return user, nil
}

// OpenMarket seeds the session's simulated market.
func OpenMarket() (*investlab.Simulator, *investlab.Market) {
	sim := investlab.NewSimulator()
	return sim, investlab.SeedMarket(sim)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
