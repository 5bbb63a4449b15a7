package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear the ledger and its persisted state" }
func (*resetCmd) Usage() string {
	return `spl reset

  Clears all stock data after an explicit confirmation. This cannot be
  undone.

`
}

func (*resetCmd) SetFlags(f *flag.FlagSet) {}

func (*resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	session.Reset()
	return subcommands.ExitSuccess
}
