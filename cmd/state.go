package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/investlab/investlab"
)

type stateCmd struct {
	query string
}

func (*stateCmd) Name() string     { return "state" }
func (*stateCmd) Synopsis() string { return "inspect the persisted app state" }
func (*stateCmd) Usage() string {
	return `ivl state [-q <jsonpath>] [<key>...]

  Dumps the persisted state files (keys: session, users, language,
  progress, portfolio). With -q, evaluates a JSONPath expression against
  each dumped document, e.g.:

    ivl state -q '$.holdings[*].ticker' portfolio
`
}

func (p *stateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "JSONPath expression to evaluate.")
}

func (p *stateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()

	keys := f.Args()
	if len(keys) == 0 {
		keys = investlab.Keys
	}

	for _, key := range keys {
		raw, err := store.ReadRaw(key)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if raw == nil {
			fmt.Printf("# %s: (not set)\n", key)
			continue
		}
		if p.query == "" {
			fmt.Printf("# %s\n%s", key, raw)
			continue
		}

		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", key, err)
			return subcommands.ExitFailure
		}
		result, err := jsonpath.Get(p.query, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", key, err)
			return subcommands.ExitFailure
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("# %s\n%s\n", key, out)
	}
	return subcommands.ExitSuccess
}
