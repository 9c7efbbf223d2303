package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/learn"
	"github.com/investlab/investlab/renderer"
)

type learnCmd struct{}

func (*learnCmd) Name() string     { return "learn" }
func (*learnCmd) Synopsis() string { return "read the tutorials" }
func (*learnCmd) Usage() string {
	return `ivl learn [<module-id>]

  Without argument, lists the tutorial modules and their completion.
  With a module id, renders the tutorial and marks it completed.
`
}

func (*learnCmd) SetFlags(f *flag.FlagSet) {}

func (p *learnCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.Tutorials(progress))
		return subcommands.ExitSuccess
	}

	module, ok := learn.Get(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown tutorial %q, run `ivl learn` to list them\n", f.Arg(0))
		return subcommands.ExitFailure
	}
	content, err := module.Content()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(content)

	progress.CompleteTutorial(module.ID)
	if err := store.SaveProgress(progress); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("\nModule %s completed. Progress: %d%%\n", module.ID, progress.Percent(len(learn.Modules)))
	return subcommands.ExitSuccess
}
