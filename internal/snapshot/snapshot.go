// Package snapshot persists whole-report gas totals between runs and
// computes the deltas against the current run.
package snapshot

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/CaptShanks/gasprism/internal/parser"
)

const (
	// DefaultPath is the snapshot file, relative to the working directory
	DefaultPath = ".sol_gas.log"

	filePerm = 0o644
)

var (
	// ErrMalformedSnapshot indicates the snapshot file exists but is not a valid snapshot.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrSnapshotIO indicates the snapshot file could not be read or written.
	ErrSnapshotIO = errors.New("snapshot file operation failed")
)

// Snapshot is the durable record of the previous run.
// Median is aggregated by the parser but not persisted.
type Snapshot struct {
	DeploymentCost uint64 `json:"deployment_cost"`
	MinCost        uint64 `json:"min_cost"`
	AvgCost        uint64 `json:"avg_cost"`
	MaxCost        uint64 `json:"max_cost"`
}

// FromTotals builds the snapshot persisted for a run
func FromTotals(t parser.Totals) Snapshot {
	return Snapshot{
		DeploymentCost: t.DeploymentCost,
		MinCost:        t.MinCost,
		AvgCost:        t.AvgCost,
		MaxCost:        t.MaxCost,
	}
}

// FromTable aggregates a parsed gas table into a snapshot
func FromTable(table *parser.GasTable) Snapshot {
	return FromTotals(table.Totals())
}

// UnmarshalJSON requires all four fields to be present
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw struct {
		DeploymentCost *uint64 `json:"deployment_cost"`
		MinCost        *uint64 `json:"min_cost"`
		AvgCost        *uint64 `json:"avg_cost"`
		MaxCost        *uint64 `json:"max_cost"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value *uint64
	}{
		{"deployment_cost", raw.DeploymentCost},
		{"min_cost", raw.MinCost},
		{"avg_cost", raw.AvgCost},
		{"max_cost", raw.MaxCost},
	}
	for _, f := range fields {
		if f.value == nil {
			return errors.Newf("missing field %q", f.name)
		}
	}

	*s = Snapshot{
		DeploymentCost: *raw.DeploymentCost,
		MinCost:        *raw.MinCost,
		AvgCost:        *raw.AvgCost,
		MaxCost:        *raw.MaxCost,
	}
	return nil
}

// Load reads the snapshot at path. A missing file is the zero snapshot.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, errors.Mark(errors.Wrapf(err, "read snapshot %s", path), ErrSnapshotIO)
	}

	var snap Snapshot
	if err := json.Unmarshal(bytes.TrimSpace(data), &snap); err != nil {
		return Snapshot{}, errors.WithHintf(
			errors.Mark(errors.Wrapf(err, "decode snapshot %s", path), ErrMalformedSnapshot),
			"delete %s to start a fresh baseline", path)
	}

	return snap, nil
}

// Save replaces the snapshot at path with snap
func Save(path string, snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}

	if err := writeFile(path, data, filePerm); err != nil {
		return errors.Mark(errors.Wrapf(err, "write snapshot %s", path), ErrSnapshotIO)
	}
	return nil
}
