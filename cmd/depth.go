package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/renderer"
)

type depthCmd struct{}

func (*depthCmd) Name() string     { return "depth" }
func (*depthCmd) Synopsis() string { return "show a simulated order book" }
func (*depthCmd) Usage() string {
	return `ivl depth <ticker>

  Shows the simulated order book of a ticker: the best five bids and the
  best five asks around the last traded price.
`
}

func (*depthCmd) SetFlags(f *flag.FlagSet) {}

func (p *depthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.Depth(st))
	return subcommands.ExitSuccess
}
