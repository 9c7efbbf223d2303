package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type forgotCmd struct {
	email string
}

func (*forgotCmd) Name() string     { return "forgot" }
func (*forgotCmd) Synopsis() string { return "request a password reset OTP" }
func (*forgotCmd) Usage() string {
	return `ivl forgot -email <email>

  Requests a password-reset OTP. The same confirmation is printed whether
  or not the email is registered.
`
}

func (p *forgotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email of the account to reset.")
}

func (p *forgotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	users, err := store.LoadUsers()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	flow := investlab.NewFlow(users)
	otp := flow.RequestReset(p.email)
	if err := store.SaveUsers(flow.Users()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if otp != "" {
		fmt.Printf("Simulated OTP (valid %s): %s\n", investlab.OTPValidity, otp)
	}
	fmt.Println("If this email is registered, a reset code has been sent.")
	fmt.Printf("Reset with: ivl reset -email %s -otp <code> -password <new> -confirm <new>\n", p.email)
	return subcommands.ExitSuccess
}
