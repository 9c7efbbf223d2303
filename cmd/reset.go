package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type resetCmd struct {
	email   string
	otp     string
	pass    string
	confirm string
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "reset a password with an OTP" }
func (*resetCmd) Usage() string {
	return `ivl reset -email <email> -otp <code> -password <new> -confirm <new>

  Sets a new password using the OTP from "ivl forgot".
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email of the account to reset.")
	f.StringVar(&p.otp, "otp", "", "The 6-digit one-time password.")
	f.StringVar(&p.pass, "password", "", "New password (at least 6 characters).")
	f.StringVar(&p.confirm, "confirm", "", "New password confirmation.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	users, err := store.LoadUsers()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	flow := investlab.NewFlow(users)
	if err := flow.ResetPassword(p.email, p.otp, investlab.ResetForm{Password: p.pass, Confirm: p.confirm}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveUsers(flow.Users()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Password updated. You can now log in.")
	return subcommands.ExitSuccess
}
