package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/renderer"
)

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show simulated price history" }
func (*historyCmd) Usage() string {
	return `ivl history [-days n] <ticker>

  Shows the simulated daily price history of a ticker, most recent last.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.days, "days", 30, "Number of trailing days to show.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one ticker")
		return subcommands.ExitUsageError
	}
	_, market := OpenMarket()
	st := market.Get(f.Arg(0))
	if st == nil {
		fmt.Fprintf(os.Stderr, "unknown ticker %q\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.History(st, p.days))
	return subcommands.ExitSuccess
}
