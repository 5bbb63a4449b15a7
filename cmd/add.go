package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	category string
	price    string
	quantity string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a stock item to the ledger" }
func (*addCmd) Usage() string {
	return `spl add -n <name> [-c <category>] -p <price> -q <quantity>

  Appends a new stock item with no sales recorded yet, saves the ledger and
  displays the refreshed dashboard.

Usage Examples:
$ spl add -n "Rice Bag" -c Grains -p 25000 -q 10

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name.")
	f.StringVar(&c.category, "c", "", "Item category, may be empty.")
	f.StringVar(&c.price, "p", "", "Unit price, must be positive.")
	f.StringVar(&c.quantity, "q", "", "Units received, must be a positive integer.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	item, err := session.AddStock(c.name, c.category, c.price, c.quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	fmt.Fprintf(os.Stderr, "Added %q: %d units at %s\n", item.Name, item.Quantity, item.Price)
	return subcommands.ExitSuccess
}
