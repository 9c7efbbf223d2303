// Command ivl is a local-first stock market learning app: a simulated
// market, a virtual-cash portfolio and bite-size tutorials, all on disk.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/investlab/investlab/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: "COMP_INSTALL=1 ivl" installs it.
	subs := make(map[string]*complete.Command, len(cmd.Names()))
	for _, name := range cmd.Names() {
		subs[name] = &complete.Command{Args: predict.Something}
	}
	complete.Complete("ivl", &complete.Command{Sub: subs})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
