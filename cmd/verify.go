package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type verifyCmd struct {
	email string
	otp   string
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "verify an account with its OTP" }
func (*verifyCmd) Usage() string {
	return `ivl verify -email <email> -otp <code>

  Activates an account using the one-time password shown at registration.
  An expired or wrong code leaves the account pending; request a new code
  by logging in.
`
}

func (p *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Email of the account to verify.")
	f.StringVar(&p.otp, "otp", "", "The 6-digit one-time password.")
}

func (p *verifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	users, err := store.LoadUsers()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	flow := investlab.NewFlow(users)
	if err := flow.Verify(p.email, p.otp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveUsers(flow.Users()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %s verified. You can now log in.\n", p.email)
	return subcommands.ExitSuccess
}
