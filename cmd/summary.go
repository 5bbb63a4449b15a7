package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/shoply/shoply/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the full dashboard" }
func (*summaryCmd) Usage() string {
	return `spl summary

  Displays the dashboard: headline stats, the stock table, the sale-target
  selector and the sold/remaining charts.

`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	printMarkdown(renderer.DashboardMarkdown(session.Views()))
	return subcommands.ExitSuccess
}
