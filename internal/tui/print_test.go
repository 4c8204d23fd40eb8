package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CaptShanks/gasprism/internal/parser"
	"github.com/CaptShanks/gasprism/internal/snapshot"
)

func plainColors(t *testing.T) {
	t.Helper()
	ConfigureColors(true)
	t.Cleanup(func() { ConfigureColors(false) })
}

func sampleTable() *parser.GasTable {
	return &parser.GasTable{Contracts: []parser.Contract{
		{
			File: "src/Counter.sol", Name: "Counter", Kind: "contract",
			DeploymentCost: 106715, DeploymentSize: 373,
			Functions: []parser.Function{
				{Name: "increment", Min: 22340, Avg: 22340, Median: 22340, Max: 22340, Calls: 1},
				{Name: "setNumber", Min: 2390, Avg: 19980, Median: 22290, Max: 22290, Calls: 257},
			},
		},
		{File: "src/lib/Math.sol", Name: "Math", Kind: "library", DeploymentCost: 7000, DeploymentSize: 60},
	}}
}

func TestRenderDiffPlainMatchesSnapshotRender(t *testing.T) {
	plainColors(t)

	tests := []struct {
		name     string
		previous snapshot.Snapshot
		current  snapshot.Snapshot
	}{
		{"first run", snapshot.Snapshot{}, snapshot.Snapshot{DeploymentCost: 10, MinCost: 1, AvgCost: 2, MaxCost: 3}},
		{"reduced", snapshot.Snapshot{DeploymentCost: 1000}, snapshot.Snapshot{DeploymentCost: 800}},
		{"mixed", snapshot.Snapshot{MinCost: 5, MaxCost: 5}, snapshot.Snapshot{MinCost: 3, MaxCost: 9}},
		{"unchanged", snapshot.Snapshot{AvgCost: 7}, snapshot.Snapshot{AvgCost: 7}},
	}
	for _, tt := range tests {
		deltas := snapshot.Compare(tt.previous, tt.current)
		got := RenderDiff(deltas)
		want := snapshot.Render(deltas)
		if got != want {
			t.Errorf("%s: RenderDiff() = %q, want %q", tt.name, got, want)
		}
	}
}

func TestRenderDiffColored(t *testing.T) {
	ConfigureColors(false)

	deltas := snapshot.Compare(
		snapshot.Snapshot{DeploymentCost: 1000, MaxCost: 500},
		snapshot.Snapshot{DeploymentCost: 800, MaxCost: 700},
	)
	got := RenderDiff(deltas)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output, got %q", got)
	}
	if !strings.Contains(got, "reduced by 200") || !strings.Contains(got, "increased by 200") {
		t.Errorf("missing delta text in %q", got)
	}
}

func TestPrintDiffSilentWhenUnchanged(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintDiff(&buf, nil); err != nil {
		t.Fatalf("PrintDiff: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	plainColors(t)

	var buf bytes.Buffer
	if err := PrintTable(&buf, sampleTable()); err != nil {
		t.Fatalf("PrintTable: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Gas-Prism",
		"2 contracts, 2 functions",
		"src/Counter.sol:Counter",
		"deployment cost 106,715, size 373",
		"src/lib/Math.sol:Math",
		"library",
		"setNumber",
		"19,980",
		"# calls",
		"Deployment",
		"113,715",
		"44,630",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTableTruncatesLongIDs(t *testing.T) {
	plainColors(t)

	long := strings.Repeat("nested/", 20) + "Deep.sol"
	gt := &parser.GasTable{Contracts: []parser.Contract{{File: long, Name: "Deep", Kind: "contract"}}}

	var buf bytes.Buffer
	if err := PrintTable(&buf, gt); err != nil {
		t.Fatalf("PrintTable: %v", err)
	}
	if strings.Contains(buf.String(), long) {
		t.Error("expected long contract id to be truncated")
	}
	if !strings.Contains(buf.String(), "…") {
		t.Error("expected ellipsis on truncated id")
	}
}

func TestFormatGas(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{106715, "106,715"},
		{18446744073709551615, "18,446,744,073,709,551,615"},
	}
	for _, tt := range tests {
		if got := formatGas(tt.in); got != tt.want {
			t.Errorf("formatGas(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSetTheme(t *testing.T) {
	defer SetDarkPalette()

	SetTheme("light")
	if reducedColor != "#587539" {
		t.Errorf("light palette not applied, reduced color %q", reducedColor)
	}
	SetTheme("unknown")
	if reducedColor != "#587539" {
		t.Error("unknown theme should keep the current palette")
	}
	SetTheme("dark")
	if reducedColor != "#9ece6a" {
		t.Errorf("dark palette not applied, reduced color %q", reducedColor)
	}
}
