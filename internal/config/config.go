// Package config resolves gasprism settings from flags, GASPRISM_*
// environment variables and an optional .gasprism.yaml file.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/CaptShanks/gasprism/internal/forge"
	"github.com/CaptShanks/gasprism/internal/snapshot"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. GASPRISM_SNAPSHOT
	EnvPrefix = "GASPRISM"

	// FileName is the config file looked up in the working directory
	FileName = ".gasprism"

	// DefaultUpdateCheckIntervalDays is used when the interval is unset or invalid
	DefaultUpdateCheckIntervalDays = 7
)

// Configuration keys
const (
	KeySnapshot            = "snapshot"
	KeyReport              = "report"
	KeyPrint               = "print"
	KeyNoColor             = "no_color"
	KeyTheme               = "theme"
	KeyLogLevel            = "log.level"
	KeyForgeCommand        = "forge.command"
	KeyForgeArgs           = "forge.args"
	KeySkipUpdateCheck     = "skip_update_check"
	KeyUpdateCheckInterval = "update_check_interval"
)

// Config is the resolved configuration for one run
type Config struct {
	SnapshotPath            string
	ReportPath              string // empty runs the forge command
	PrintTable              bool
	NoColor                 bool
	Theme                   string // "", "light" or "dark"
	LogLevel                string
	ForgeCommand            string
	ForgeArgs               []string
	SkipUpdateCheck         bool
	UpdateCheckIntervalDays int
}

// Init sets defaults and environment bindings on v and reads the config
// file. configFile overrides the lookup of .gasprism.yaml in the working
// directory; a missing default file is not an error.
func Init(v *viper.Viper, configFile string) error {
	v.SetDefault(KeySnapshot, snapshot.DefaultPath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyForgeCommand, forge.DefaultCommandName)
	v.SetDefault(KeyForgeArgs, forge.DefaultArgs)
	v.SetDefault(KeyUpdateCheckInterval, DefaultUpdateCheckIntervalDays)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// NO_COLOR is honoured as well as GASPRISM_NO_COLOR
	_ = v.BindEnv(KeyNoColor, EnvPrefix+"_NO_COLOR", "NO_COLOR")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// Load resolves the current values from v
func Load(v *viper.Viper) Config {
	return Config{
		SnapshotPath:            v.GetString(KeySnapshot),
		ReportPath:              v.GetString(KeyReport),
		PrintTable:              isTruthy(v.GetString(KeyPrint)),
		NoColor:                 isTruthy(v.GetString(KeyNoColor)),
		Theme:                   strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
		LogLevel:                v.GetString(KeyLogLevel),
		ForgeCommand:            v.GetString(KeyForgeCommand),
		ForgeArgs:               v.GetStringSlice(KeyForgeArgs),
		SkipUpdateCheck:         isTruthy(v.GetString(KeySkipUpdateCheck)),
		UpdateCheckIntervalDays: intervalDays(v.GetInt(KeyUpdateCheckInterval)),
	}
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func intervalDays(n int) int {
	if n <= 0 {
		return DefaultUpdateCheckIntervalDays
	}
	return n
}
