package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/CaptShanks/gasprism/internal/parser"
	"github.com/CaptShanks/gasprism/internal/snapshot"
)

// maxIDWidth bounds the file:contract column, long source paths are cut with an ellipsis
const maxIDWidth = 72

var numbers = message.NewPrinter(language.English)

func init() {
	// Force color output even when not a TTY (for piping)
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// ConfigureColors keeps true color unless noColor is set, in which case
// every style renders as plain text.
func ConfigureColors(noColor bool) termenv.Profile {
	profile := termenv.TrueColor
	if noColor {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	return profile
}

// RenderDiff colors each delta line, reductions green and increases red.
// Without color the text equals snapshot.Render.
func RenderDiff(deltas []snapshot.Delta) string {
	var b strings.Builder
	for _, d := range deltas {
		style, verb := increasedStyle, "increased"
		if d.Reduced() {
			style, verb = reducedStyle, "reduced"
		}
		b.WriteString(summaryStyle.Render(d.Metric.Label()))
		b.WriteString(" ")
		b.WriteString(style.Render(fmt.Sprintf("%s by %d", verb, d.Amount())))
		b.WriteString("\n")
	}
	return b.String()
}

// PrintDiff writes the colored deltas; nothing is written when no metric changed
func PrintDiff(w io.Writer, deltas []snapshot.Delta) error {
	if len(deltas) == 0 {
		return nil
	}
	_, err := io.WriteString(w, RenderDiff(deltas))
	return err
}

// PrintTable writes the parsed report, one block per contract followed by the totals
func PrintTable(w io.Writer, gt *parser.GasTable) error {
	var b strings.Builder

	b.WriteString(headerStyle.Render("⛽ Gas-Prism - Forge Gas Report"))
	b.WriteString("\n")
	b.WriteString(summaryStyle.Render(fmt.Sprintf("%s contracts, %s functions",
		numberStyle.Render(formatGas(uint64(len(gt.Contracts)))),
		numberStyle.Render(formatGas(uint64(gt.FunctionCount()))),
	)))
	b.WriteString("\n\n")

	for _, c := range gt.Contracts {
		b.WriteString(renderContract(c))
		b.WriteString("\n\n")
	}

	b.WriteString(renderTotals(gt.Totals()))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderContract(c parser.Contract) string {
	title := fmt.Sprintf("%s %s %s",
		contractStyle.Render(truncate.StringWithTail(c.ID(), maxIDWidth, "…")),
		kindStyle.Render(c.Kind),
		mutedStyle.Render(fmt.Sprintf("deployment cost %s, size %s",
			formatGas(c.DeploymentCost), formatGas(c.DeploymentSize))),
	)
	if len(c.Functions) == 0 {
		return title
	}

	rows := make([][]string, 0, len(c.Functions))
	for _, f := range c.Functions {
		rows = append(rows, []string{
			f.Name,
			formatGas(f.Min),
			formatGas(f.Avg),
			formatGas(f.Median),
			formatGas(f.Max),
			formatGas(f.Calls),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Function", "min", "avg", "median", "max", "# calls").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col > 0 {
				return tableCellStyle.Align(lipgloss.Right)
			}
			return tableCellStyle
		})

	return title + "\n" + t.String()
}

func renderTotals(totals parser.Totals) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers("Total", "gas").
		Rows(
			[]string{"Deployment", formatGas(totals.DeploymentCost)},
			[]string{"Minimum calls", formatGas(totals.MinCost)},
			[]string{"Average calls", formatGas(totals.AvgCost)},
			[]string{"Median calls", formatGas(totals.MedianCost)},
			[]string{"Maximum calls", formatGas(totals.MaxCost)},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 1:
				return tableTotalStyle.Align(lipgloss.Right)
			default:
				return tableCellStyle
			}
		})
	return t.String()
}

// formatGas groups digits, e.g. 1234567 -> 1,234,567
func formatGas(n uint64) string {
	return numbers.Sprintf("%d", n)
}
