package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "show or set the language preference" }
func (*langCmd) Usage() string {
	return `ivl lang [<code>]

  Without argument, lists the available languages and marks the current
  one. With a code (e.g. "en" or "hi"), sets the preference.
`
}

func (*langCmd) SetFlags(f *flag.FlagSet) {}

func (p *langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	if f.NArg() == 0 {
		current, err := store.LoadLanguage()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		for _, lang := range investlab.Languages {
			marker := " "
			if lang.Code == current.Code {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, lang.Code, lang.Name)
		}
		return subcommands.ExitSuccess
	}

	lang, err := investlab.ParseLanguage(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLanguage(lang); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Language set to %s.\n", lang.Name)
	return subcommands.ExitSuccess
}
