package parser

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNoSections indicates the input contained no contract section boundary.
	ErrNoSections = errors.New("no contract sections found in gas report")

	// ErrMissingRow indicates a section ended before all required rows were read.
	ErrMissingRow = errors.New("missing row")

	// ErrMalformedHeader indicates the contract header is not "file:contract kind".
	ErrMalformedHeader = errors.New("malformed contract header")

	// ErrMalformedSeparator indicates the row under the header is not a dash rule.
	ErrMalformedSeparator = errors.New("malformed separator row")

	// ErrUnexpectedColumnTitles indicates the deployment column titles did not match.
	ErrUnexpectedColumnTitles = errors.New("unexpected deployment column titles")

	// ErrMalformedDeploymentMetrics indicates the deployment cost/size row is invalid.
	ErrMalformedDeploymentMetrics = errors.New("malformed deployment metrics row")

	// ErrMalformedFunctionRow indicates a function row is short or has non-numeric metrics.
	ErrMalformedFunctionRow = errors.New("malformed function row")
)

// ParseError describes where in the report a section failed to parse.
// Err always wraps one of the package sentinels.
type ParseError struct {
	Section int
	Row     int
	State   State
	Cells   Row
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "section %d, row %d (%s): %v", e.Section+1, e.Row+1, e.State, e.Err)
	if e.Cells != nil {
		fmt.Fprintf(&b, ": | %s |", strings.Join(e.Cells, " | "))
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
