package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/CaptShanks/gasprism/internal/forge"
	"github.com/CaptShanks/gasprism/internal/updater"
)

// version is overridden at release time with -ldflags "-X main.version=..."
var version = "0.1.0"

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show gasprism and forge versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(c.stdout, "gasprism v%s\n\n", version)

			forgeVersion := forge.NewCommand(c.cfg.ForgeCommand, []string{"--version"})
			fmt.Fprintf(c.stdout, "%s version:\n", forgeVersion.Name)
			out, err := forgeVersion.Report(cmd.Context())
			if err != nil {
				fmt.Fprintf(c.stderr, "  %s not found or failed to run\n", forgeVersion.Name)
				c.logger.Debug("forge --version failed", "err", err)
			} else {
				fmt.Fprintf(c.stdout, "  %s\n", strings.TrimSpace(out))
			}

			// Check for updates (skip if disabled)
			if c.cfg.SkipUpdateCheck {
				return
			}
			if latest, hasUpdate, err := updater.CheckLatest(version); err == nil && hasUpdate {
				fmt.Fprintf(c.stdout, "\nUpdate available: v%s. Run 'gasprism upgrade' to update (or re-run the install script).\n", latest)
			}
		},
	}
}

func newUpgradeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade gasprism to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, hasUpdate, err := updater.CheckLatest(version)
			if err != nil {
				return errors.WithHint(errors.Wrap(err, "check for updates"), updater.CurlFallbackMessage(err))
			}
			if !hasUpdate {
				fmt.Fprintln(c.stdout, "Already up to date.")
				return nil
			}

			newVer, err := updater.Upgrade(version)
			if err != nil {
				return errors.WithHint(err, updater.CurlFallbackMessage(err))
			}
			fmt.Fprintf(c.stdout, "Upgraded to v%s. Restart gasprism to use the new version.\n", newVer)
			return nil
		},
	}
}
