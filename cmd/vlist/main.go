package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/cmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vlist [file]",
		Short: "vlist - browse huge lists in the terminal",
		Long: "vlist renders long record lists through a small pool of recycled rows.\n" +
			"Run it on a file (or - for stdin) to browse, or use simulate to watch the window at work.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.BindView(root)

	root.AddCommand(cmd.ViewCmd())
	root.AddCommand(cmd.SimulateCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}
