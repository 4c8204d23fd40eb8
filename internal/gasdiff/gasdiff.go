// Package gasdiff runs one gas comparison: load the previous snapshot,
// obtain and parse the current report, print the deltas and persist the new
// snapshot.
package gasdiff

import (
	"context"

	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/CaptShanks/gasprism/internal/forge"
	"github.com/CaptShanks/gasprism/internal/parser"
	"github.com/CaptShanks/gasprism/internal/snapshot"
)

// Store loads and saves the snapshot baseline
type Store interface {
	Load() (snapshot.Snapshot, error)
	Save(snapshot.Snapshot) error
}

// FileStore keeps the snapshot in a JSON file
type FileStore struct {
	Path string
}

// Load reads the snapshot, zero when the file does not exist
func (s FileStore) Load() (snapshot.Snapshot, error) {
	return snapshot.Load(s.Path)
}

// Save replaces the snapshot file
func (s FileStore) Save(snap snapshot.Snapshot) error {
	return snapshot.Save(s.Path, snap)
}

// Result is everything one run computed
type Result struct {
	Table    *parser.GasTable
	Totals   parser.Totals
	Previous snapshot.Snapshot
	Current  snapshot.Snapshot
	Deltas   []snapshot.Delta
}

// Diff renders the deltas as plain text
func (r *Result) Diff() string {
	return snapshot.Render(r.Deltas)
}

// Runner wires a report source to a snapshot store
type Runner struct {
	Source forge.Source
	Store  Store
	// Print is called with the result before the new snapshot is saved
	Print  func(*Result) error
	Logger *log.Logger
}

// Run executes the comparison. Any failure aborts before the snapshot is
// written, so a bad report never becomes the next baseline.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}

	previous, err := r.Store.Load()
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded snapshot", "snapshot", previous)

	logger.Debug("Reading gas report", "source", r.Source)
	text, err := r.Source.Report(ctx)
	if err != nil {
		return nil, err
	}

	table, err := parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse gas report")
	}
	logger.Debug("Parsed gas report",
		"contracts", len(table.Contracts),
		"functions", table.FunctionCount())

	totals := table.Totals()
	current := snapshot.FromTotals(totals)
	result := &Result{
		Table:    table,
		Totals:   totals,
		Previous: previous,
		Current:  current,
		Deltas:   snapshot.Compare(previous, current),
	}

	if r.Print != nil {
		if err := r.Print(result); err != nil {
			return nil, errors.Wrap(err, "print gas diff")
		}
	}

	if err := r.Store.Save(current); err != nil {
		return nil, err
	}
	logger.Debug("Saved snapshot", "snapshot", current)

	return result, nil
}
