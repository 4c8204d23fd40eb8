// Package parser provides parsing functionality for forge gas reports.
// It tokenizes the pipe-delimited report table, splits it into per-contract
// sections, parses each section with a small state machine and reduces the
// result into whole-report gas totals.
package parser
