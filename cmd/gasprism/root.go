package main

import (
	"io"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CaptShanks/gasprism/internal/config"
	"github.com/CaptShanks/gasprism/internal/forge"
	"github.com/CaptShanks/gasprism/internal/gasdiff"
	"github.com/CaptShanks/gasprism/internal/tui"
	"github.com/CaptShanks/gasprism/internal/updater"
)

// cli is the state shared by every command of one invocation
type cli struct {
	v          *viper.Viper
	cfg        config.Config
	logger     *log.Logger
	configFile string
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "gasprism",
		Short: "Track forge gas report totals between runs",
		Long: `Gas-Prism runs "forge test --gas-report", sums the gas costs of every
contract and function in the report and compares the totals with the
previous run stored in .sol_gas.log. Changed totals are printed as

    Deployment gas cost reduced by 1200
    Maximum functions call gas cost increased by 87

and the new totals become the baseline for the next run. Nothing is
printed when the totals did not change.`,
		Example: `  # Run forge and compare with the last run
  gasprism

  # Also print the parsed gas table
  gasprism --print

  # Compare a saved report instead of running forge
  forge test --gas-report > gas.txt
  gasprism --report gas.txt
  forge test --gas-report | gasprism --report -

  # Only render a report, leaving the snapshot alone
  gasprism table gas.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
		RunE: c.runDiff,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default is ./.gasprism.yaml)")
	pf.String("snapshot", "", "snapshot file (default \".sol_gas.log\")")
	pf.String("log-level", "", "log level: debug, info, warn, error (default \"info\")")
	pf.String("theme", "", "color theme: light or dark")
	pf.Bool("no-color", false, "disable colored output")

	f := root.Flags()
	f.StringP("report", "r", "", "read the gas report from a file (- for stdin) instead of running forge")
	f.BoolP("print", "p", false, "print the parsed gas table before the diff")

	_ = c.v.BindPFlag(config.KeySnapshot, pf.Lookup("snapshot"))
	_ = c.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = c.v.BindPFlag(config.KeyTheme, pf.Lookup("theme"))
	_ = c.v.BindPFlag(config.KeyNoColor, pf.Lookup("no-color"))
	_ = c.v.BindPFlag(config.KeyReport, f.Lookup("report"))
	_ = c.v.BindPFlag(config.KeyPrint, f.Lookup("print"))

	root.AddCommand(
		newTableCmd(c),
		newVersionCmd(c),
		newUpgradeCmd(c),
	)
	return root
}

// setup resolves configuration and sets up colors and logging
func (c *cli) setup() error {
	if err := config.Init(c.v, c.configFile); err != nil {
		return err
	}
	c.cfg = config.Load(c.v)

	tui.SetTheme(c.cfg.Theme)
	profile := tui.ConfigureColors(c.cfg.NoColor)
	c.logger = newLogger(c.stderr, c.cfg.LogLevel, profile)

	if used := c.v.ConfigFileUsed(); used != "" {
		c.logger.Debug("Loaded config file", "file", used)
	}
	return nil
}

// reportSource returns the configured source, with stdin and the spinner wired in
func (c *cli) reportSource(cmd *cobra.Command, path string) forge.Source {
	if path != "" {
		return &forge.File{Path: path, Stdin: cmd.InOrStdin()}
	}
	return tui.WithSpinner(forge.NewCommand(c.cfg.ForgeCommand, c.cfg.ForgeArgs), c.stderr)
}

func (c *cli) runDiff(cmd *cobra.Command, _ []string) error {
	runner := &gasdiff.Runner{
		Source: c.reportSource(cmd, c.cfg.ReportPath),
		Store:  gasdiff.FileStore{Path: c.cfg.SnapshotPath},
		Logger: c.logger,
		Print: func(res *gasdiff.Result) error {
			if c.cfg.PrintTable {
				if err := tui.PrintTable(c.stdout, res.Table); err != nil {
					return err
				}
			}
			return tui.PrintDiff(c.stdout, res.Deltas)
		},
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	if len(res.Deltas) == 0 {
		c.logger.Debug("Gas totals unchanged", "snapshot", c.cfg.SnapshotPath)
	}

	c.nudge()
	return nil
}

// nudge logs a notice when a newer release exists, using the cached check
func (c *cli) nudge() {
	if c.cfg.SkipUpdateCheck {
		return
	}
	latest, hasUpdate, err := updater.CheckLatestWithCache(version, c.cfg.UpdateCheckIntervalDays)
	if err != nil {
		c.logger.Debug("Update check failed", "err", err)
		return
	}
	if hasUpdate {
		c.logger.Info("Update available", "version", "v"+latest, "run", "gasprism upgrade")
	}
}
