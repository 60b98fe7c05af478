package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Shell completion of the subcommand names. This is a no-op outside of a
	// completion request.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"interactive": {},
			"deposit":     {},
			"payment":     {},
			"ledger":      {},
			"report":      {},
			"summary":     {},
			"topic":       {},
		},
	}
	completion.Complete("fint")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	// Without a command, start the interactive menu session.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "interactive")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
