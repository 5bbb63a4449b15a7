package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shoply/shoply"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	target   string
	quantity string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against a stock item" }
func (*sellCmd) Usage() string {
	return `spl sell -i <target> -q <quantity>

  Records a sale of <quantity> units against the stock item addressed by
  <target>, saves the ledger and displays the refreshed dashboard. Targets
  are the ids listed in the dashboard's sale-target table.

Usage Examples:
$ spl sell -i 0 -q 3

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "i", "", "Sale target id, as listed in the dashboard.")
	f.StringVar(&c.quantity, "q", "", "Units sold, must be a positive integer within remaining stock.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if err := session.RecordSale(c.target, c.quantity); err != nil {
		switch {
		case errors.Is(err, shoply.ErrInvalidTarget):
			fmt.Fprintf(os.Stderr, "Please select a valid stock item to record a sale: %v\n", err)
		case errors.Is(err, shoply.ErrInvalidQuantity), errors.Is(err, shoply.ErrInsufficientStock):
			fmt.Fprintf(os.Stderr, "Invalid quantity: %v\n", err)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
