// Package cmd implements the CLI application to manage the shoply stock
// ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shoply/shoply"
	"github.com/shoply/shoply/renderer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "stock")
	c.Register(&sellCmd{}, "stock")
	c.Register(&resetCmd{}, "stock")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&stockCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storePath = flag.String("store-path", ".shoply", "Path to the folder holding the persisted stock ledger")

// openSession loads the persisted ledger into a fresh session wired to the
// terminal sink.
func openSession() *shoply.Session {
	return shoply.Open(shoply.NewDirStore(*storePath), terminalSink{})
}

// terminalSink is the presentation sink of the CLI: views render as markdown
// on stdout, prompts and notifications go through the terminal.
type terminalSink struct{}

func (terminalSink) Render(v *shoply.Views) {
	printMarkdown(renderer.DashboardMarkdown(v))
}

func (terminalSink) Confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (terminalSink) Notify(message string) {
	fmt.Fprintln(os.Stderr, message)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the fancy renderer is not available.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
