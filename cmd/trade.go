package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
	"github.com/investlab/investlab/renderer"
)

type buyCmd struct{}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares with virtual cash" }
func (*buyCmd) Usage() string {
	return `ivl buy <ticker> <quantity>

  Buys shares at the simulated last traded price, paying from the virtual
  cash balance. The trade is rejected when cash is insufficient.
`
}

func (*buyCmd) SetFlags(f *flag.FlagSet) {}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return trade(investlab.Buy, f)
}

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares from the portfolio" }
func (*sellCmd) Usage() string {
	return `ivl sell <ticker> <quantity>

  Sells shares at the simulated last traded price, crediting the proceeds
  to the virtual cash balance. The trade is rejected when the portfolio
  holds fewer shares than requested.
`
}

func (*sellCmd) SetFlags(f *flag.FlagSet) {}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return trade(investlab.Sell, f)
}

// trade parses "<ticker> <quantity>", applies the trade at the current
// simulated price and persists the resulting portfolio.
func trade(side investlab.TradeSide, f *flag.FlagSet) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "expected a ticker and a quantity")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	quantity, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid quantity %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	store := OpenStore()
	if _, err := CurrentUser(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	_, market := OpenMarket()
	st := market.Get(ticker)
	if st == nil {
		fmt.Fprintf(os.Stderr, "unknown ticker %q\n", ticker)
		return subcommands.ExitFailure
	}

	portfolio, err := store.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price := investlab.Rupees(st.Price)
	portfolio, err = portfolio.Apply(side, ticker, quantity, price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SavePortfolio(portfolio); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %d %s @ %s. Cash balance: %s\n", side, quantity, ticker, price, portfolio.Cash)
	return subcommands.ExitSuccess
}

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show the virtual portfolio" }
func (*holdingsCmd) Usage() string {
	return `ivl holdings

  Shows every position with its simulated profit and loss, the virtual
  cash balance and the total portfolio value.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (p *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	if _, err := CurrentUser(store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	portfolio, err := store.LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	_, market := OpenMarket()
	printMarkdown(renderer.Holdings(portfolio, market))
	return subcommands.ExitSuccess
}
