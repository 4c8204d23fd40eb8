package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/CaptShanks/gasprism/internal/parser"
	"github.com/CaptShanks/gasprism/internal/tui"
)

func newTableCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "table [file|-]",
		Short: "Render a gas report as tables without touching the snapshot",
		Long: `Parse a forge gas report and print every contract, its functions and the
report totals. With no argument forge is run; "-" reads the report from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.ReportPath
			if len(args) == 1 {
				path = args[0]
			}

			source := c.reportSource(cmd, path)
			c.logger.Debug("Reading gas report", "source", source)
			text, err := source.Report(cmd.Context())
			if err != nil {
				return err
			}

			table, err := parser.Parse(text)
			if err != nil {
				return errors.Wrap(err, "parse gas report")
			}
			return tui.PrintTable(c.stdout, table)
		},
	}
}
