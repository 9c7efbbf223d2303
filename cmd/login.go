package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type loginCmd struct {
	email string
	pass  string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log into an account" }
func (*loginCmd) Usage() string {
	return `ivl login -email <email> -password <pw>

  Opens a session for a verified account. Logging into an unverified
  account issues a fresh OTP instead.
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email address.")
	f.StringVar(&p.pass, "password", "", "Password.")
}

func (p *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	users, err := store.LoadUsers()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	flow := investlab.NewFlow(users)
	session, otp, err := flow.Login(p.email, p.pass)
	if errors.Is(err, investlab.ErrNotVerified) {
		// A fresh OTP was issued; persist it so verify can check it.
		if err := store.SaveUsers(flow.Users()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Account %s is not verified yet.\n", p.email)
		fmt.Printf("Simulated OTP (valid %s): %s\n", investlab.OTPValidity, otp)
		fmt.Printf("Activate with: ivl verify -email %s -otp <code>\n", p.email)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := store.SaveSession(session); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	user := flow.Users().Lookup(p.email)
	fmt.Printf("Welcome back, %s.\n", user.Name)
	return subcommands.ExitSuccess
}
