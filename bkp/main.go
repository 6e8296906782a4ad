package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bookkeeping/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	journals := predict.Files("*.ledger")
	prefix := predict.Something
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": journals,
		},
		Sub: map[string]*complete.Command{
			"balance": {
				Flags: map[string]complete.Predictor{
					"prefix": prefix,
					"tree":   predict.Nothing,
				},
				Args: journals,
			},
			"monthly": {
				Flags: map[string]complete.Predictor{
					"prefix": prefix,
				},
				Args: journals,
			},
			"simplify": {
				Flags: map[string]complete.Predictor{
					"trading":  predict.Nothing,
					"currency": prefix,
				},
				Args: journals,
			},
			"fmt": {
				Flags: map[string]complete.Predictor{
					"w": predict.Nothing,
				},
				Args: journals,
			},
			"import-rates": {
				Flags: map[string]complete.Predictor{
					"file":  predict.Files("*.json"),
					"path":  prefix,
					"base":  prefix,
					"quote": prefix,
					"d":     prefix,
				},
			},
			"topic": {
				Args: predict.Something,
			},
		},
	}
	c.Complete("bkp")
}
