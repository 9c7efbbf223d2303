package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
	"github.com/investlab/investlab/renderer"
)

type watchCmd struct {
	every time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "stream live simulated quotes" }
func (*watchCmd) Usage() string {
	return `ivl watch [-every d] [<ticker>...]

  Streams simulated quotes, one line per ticker per tick, until
  interrupted. Watches the whole market when no ticker is given.
`
}

func (p *watchCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&p.every, "every", investlab.TickInterval, "Interval between ticks.")
}

func (p *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sim, market := OpenMarket()

	watched := f.Args()
	for _, ticker := range watched {
		if !market.Has(ticker) {
			fmt.Fprintf(os.Stderr, "unknown ticker %q\n", ticker)
			return subcommands.ExitFailure
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sim.Run(ctx, market, p.every, func(m *investlab.Market) {
		for st := range m.All() {
			if len(watched) > 0 && !slices.Contains(watched, st.Ticker) {
				continue
			}
			fmt.Println(renderer.QuoteLine(st))
		}
	})
	return subcommands.ExitSuccess
}
