package main

import (
	"io"
	"strings"

	log "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func levelBadge(name, bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(name).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1)
}

// newLogger builds the stderr logger. Unknown levels fall back to info with a warning.
func newLogger(w io.Writer, level string, profile termenv.Profile) *log.Logger {
	logger := log.New(w)
	logger.SetColorProfile(profile)

	styles := log.DefaultStyles()
	styles.Levels = map[log.Level]lipgloss.Style{
		log.DebugLevel: levelBadge("DEBUG", "#7aa2f7", "#1a1b26"),
		log.InfoLevel:  levelBadge("INFO", "#9ece6a", "#1a1b26"),
		log.WarnLevel:  levelBadge("WARN", "#e0af68", "#1a1b26"),
		log.ErrorLevel: levelBadge("ERROR", "#f7768e", "#1a1b26"),
		log.FatalLevel: levelBadge("FATAL", "#f7768e", "#ffffff"),
	}
	styles.Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#565f89")).
		Bold(true)
	styles.Separator = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b4261"))
	logger.SetStyles(styles)

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("Unknown log level, using info", "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
