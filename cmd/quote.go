package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/renderer"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show simulated quotes" }
func (*quoteCmd) Usage() string {
	return `ivl quote [<ticker>...]

  Shows a simulated quote for each given ticker, or for the whole market
  when no ticker is given.
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (p *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, market := OpenMarket()

	tickers := f.Args()
	if len(tickers) == 0 {
		for st := range market.All() {
			tickers = append(tickers, st.Ticker)
		}
	}

	md := ""
	for _, ticker := range tickers {
		st := market.Get(ticker)
		if st == nil {
			fmt.Fprintf(os.Stderr, "unknown ticker %q\n", ticker)
			return subcommands.ExitFailure
		}
		md += renderer.Quote(st)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
