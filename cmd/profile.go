package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/renderer"
)

type profileCmd struct{}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "show the logged-in user's profile" }
func (*profileCmd) Usage() string {
	return `ivl profile

  Shows the logged-in user's details, portfolio summary, learning
  progress and language preference.
`
}

func (*profileCmd) SetFlags(f *flag.FlagSet) {}

func (p *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	user, err := CurrentUser(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	portfolio, err := store.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	lang, err := store.LoadLanguage()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	_, market := OpenMarket()
	printMarkdown(renderer.Profile(user, portfolio, market, progress, lang))
	return subcommands.ExitSuccess
}
