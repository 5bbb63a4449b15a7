package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shoply/shoply"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the stock ledger as a CSV file" }
func (*exportCmd) Usage() string {
	return `spl export [-o <file>]

  Writes the current stock ledger as CSV, one row per item with unformatted
  numeric values, compatible with spreadsheet tools. Use "-" to write to
  stdout.

Usage Examples:
$ spl export
$ spl export -o -

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", shoply.ExportFilename, "Output file, or \"-\" for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if c.output == "-" {
		if err := session.ExportCSV(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting stock: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := session.ExportCSV(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting stock to %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Exported %d items to %s\n", session.Ledger().Len(), c.output)
	return subcommands.ExitSuccess
}
