package snapshot

import (
	"fmt"
	"strings"
)

// Metric identifies one persisted gas total
type Metric int

const (
	MetricDeployment Metric = iota
	MetricMinimum
	MetricAverage
	MetricMaximum
)

// Label is the human-readable name used in diff lines
func (m Metric) Label() string {
	switch m {
	case MetricDeployment:
		return "Deployment gas cost"
	case MetricMinimum:
		return "Minimum functions call gas cost"
	case MetricAverage:
		return "Average functions call gas cost"
	case MetricMaximum:
		return "Maximum functions call gas cost"
	default:
		return "Unknown gas cost"
	}
}

// Delta is a change of one metric between two snapshots
type Delta struct {
	Metric   Metric
	Previous uint64
	Current  uint64
}

// Reduced reports whether the cost went down
func (d Delta) Reduced() bool {
	return d.Previous > d.Current
}

// Amount is the absolute difference, computed without signed overflow
func (d Delta) Amount() uint64 {
	if d.Reduced() {
		return d.Previous - d.Current
	}
	return d.Current - d.Previous
}

func (d Delta) String() string {
	verb := "increased"
	if d.Reduced() {
		verb = "reduced"
	}
	return fmt.Sprintf("%s %s by %d", d.Metric.Label(), verb, d.Amount())
}

// Compare returns one Delta per changed metric, in deployment, minimum,
// average, maximum order. Equal metrics are omitted.
func Compare(previous, current Snapshot) []Delta {
	pairs := []Delta{
		{Metric: MetricDeployment, Previous: previous.DeploymentCost, Current: current.DeploymentCost},
		{Metric: MetricMinimum, Previous: previous.MinCost, Current: current.MinCost},
		{Metric: MetricAverage, Previous: previous.AvgCost, Current: current.AvgCost},
		{Metric: MetricMaximum, Previous: previous.MaxCost, Current: current.MaxCost},
	}

	var deltas []Delta
	for _, d := range pairs {
		if d.Previous != d.Current {
			deltas = append(deltas, d)
		}
	}
	return deltas
}

// Render formats deltas as newline-terminated lines. No deltas renders "".
func Render(deltas []Delta) string {
	var b strings.Builder
	for _, d := range deltas {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Diff renders the change from previous to current
func Diff(previous, current Snapshot) string {
	return Render(Compare(previous, current))
}
