package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type registerCmd struct {
	name    string
	email   string
	pass    string
	confirm string
	dob     string
	mobile  string
	gender  string
	working string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `ivl register -name <name> -email <email> -password <pw> -confirm <pw> [-dob <yyyy-mm-dd>] [-mobile <n>] [-gender <g>] [-working <status>]

  Creates an unverified account and prints the simulated OTP. Run
  "ivl verify" with the code to activate the account.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Full name.")
	f.StringVar(&p.email, "email", "", "Email address, the unique account id.")
	f.StringVar(&p.pass, "password", "", "Password (at least 6 characters).")
	f.StringVar(&p.confirm, "confirm", "", "Password confirmation.")
	f.StringVar(&p.dob, "dob", "", "Date of birth (optional).")
	f.StringVar(&p.mobile, "mobile", "", "Mobile number (optional).")
	f.StringVar(&p.gender, "gender", "", "Gender (optional).")
	f.StringVar(&p.working, "working", "", "Working status (optional).")
}

func (p *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	users, err := store.LoadUsers()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	flow := investlab.NewFlow(users)
	otp, err := flow.Register(investlab.RegisterForm{
		Name:          p.name,
		Email:         p.email,
		Password:      p.pass,
		Confirm:       p.confirm,
		DOB:           p.dob,
		Mobile:        p.mobile,
		Gender:        p.gender,
		WorkingStatus: p.working,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveUsers(flow.Users()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created for %s.\n", p.email)
	fmt.Printf("Simulated OTP (valid %s): %s\n", investlab.OTPValidity, otp)
	fmt.Printf("Activate with: ivl verify -email %s -otp <code>\n", p.email)
	return subcommands.ExitSuccess
}
