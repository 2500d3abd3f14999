package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/vlist/internal/sim"
)

// SimulateCmd returns the `vlist simulate` command.
func SimulateCmd() *cobra.Command {
	opts := sim.Options{}
	var margin int
	cmd := &cobra.Command{
		Use:   "simulate [script.yaml]",
		Short: "Replay scroll, resize and data steps against a headless list",
		Long: "Replay a script of steps against an in-memory surface and print what each step cost.\n" +
			"Without a script a built-in walk through the list is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if c.Flags().Changed("margin") {
				opts.Margin = &margin
			}

			var script *sim.Script
			if len(args) == 1 {
				s, err := sim.LoadScript(args[0])
				if err != nil {
					return err
				}
				script = s
			} else {
				script = sim.DefaultScript(opts.Items, opts.Viewport, opts.ItemExtent)
			}

			results, err := sim.Run(opts, script)
			if err != nil {
				return fmt.Errorf("simulate: %w", err)
			}
			return sim.Format(c.OutOrStdout(), results)
		},
	}
	cmd.Flags().IntVar(&opts.Items, "items", 1000, "number of records")
	cmd.Flags().IntVar(&opts.Viewport, "viewport", 20, "viewport extent")
	cmd.Flags().IntVar(&opts.ItemExtent, "item-extent", 1, "extent of one record")
	cmd.Flags().IntVar(&margin, "margin", 0, "pinned margin (default follows the viewport)")
	return cmd
}
