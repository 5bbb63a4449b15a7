package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/shoply/shoply/renderer"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "display the stock table" }
func (*stockCmd) Usage() string {
	return `spl stock

  Displays the stock table: one row per item with price, quantities and the
  value of the remaining units.

`
}

func (*stockCmd) SetFlags(f *flag.FlagSet) {}

func (*stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	printMarkdown(renderer.TableMarkdown(session.Views().Table))
	return subcommands.ExitSuccess
}
