package parser

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// State is a step of the contract section grammar
type State int

const (
	ExpectHeader State = iota
	ExpectSeparator
	ExpectColumnTitles
	ExpectDeploymentMetrics
	ExpectFunctionTitleRow
	ConsumeFunctionRows
)

func (s State) String() string {
	switch s {
	case ExpectHeader:
		return "expect-header"
	case ExpectSeparator:
		return "expect-separator"
	case ExpectColumnTitles:
		return "expect-column-titles"
	case ExpectDeploymentMetrics:
		return "expect-deployment-metrics"
	case ExpectFunctionTitleRow:
		return "expect-function-title-row"
	case ConsumeFunctionRows:
		return "consume-function-rows"
	default:
		return "unknown"
	}
}

// Column titles of the deployment sub-table
const (
	DeploymentCostTitle = "Deployment Cost"
	DeploymentSizeTitle = "Deployment Size"
)

// functionCells is name, min, avg, median, max, calls
const functionCells = 6

// contractParser walks one section row by row
type contractParser struct {
	state    State
	contract Contract
}

// ParseContract parses a single section into a Contract. index is the
// section position in the report and is only used for error reporting.
func ParseContract(index int, rows []Row) (Contract, error) {
	p := &contractParser{state: ExpectHeader}

	for i, row := range rows {
		if err := p.step(row); err != nil {
			return Contract{}, &ParseError{
				Section: index,
				Row:     i,
				State:   p.state,
				Cells:   row,
				Err:     err,
			}
		}
	}

	// Function rows are optional, every earlier row is not
	if p.state != ConsumeFunctionRows {
		return Contract{}, &ParseError{
			Section: index,
			Row:     len(rows),
			State:   p.state,
			Err:     ErrMissingRow,
		}
	}

	return p.contract, nil
}

// step validates row against the current state and advances on success
func (p *contractParser) step(row Row) error {
	switch p.state {
	case ExpectHeader:
		if err := p.header(row); err != nil {
			return err
		}
		p.state = ExpectSeparator

	case ExpectSeparator:
		if !isRule(row) {
			return ErrMalformedSeparator
		}
		p.state = ExpectColumnTitles

	case ExpectColumnTitles:
		if !isDeploymentTitles(row) {
			return errors.Wrapf(ErrUnexpectedColumnTitles, "want %q | %q", DeploymentCostTitle, DeploymentSizeTitle)
		}
		p.state = ExpectDeploymentMetrics

	case ExpectDeploymentMetrics:
		if err := p.deployment(row); err != nil {
			return err
		}
		p.state = ExpectFunctionTitleRow

	case ExpectFunctionTitleRow:
		// Function table column titles, not validated
		p.state = ConsumeFunctionRows

	case ConsumeFunctionRows:
		fn, err := parseFunction(row)
		if err != nil {
			return err
		}
		p.contract.Functions = append(p.contract.Functions, fn)
	}

	return nil
}

// header parses "file:contract kind". Splits are on the first ':' and the
// first space after it.
func (p *contractParser) header(row Row) error {
	if len(row) == 0 {
		return ErrMalformedHeader
	}
	cell := row[0]

	colon := strings.IndexByte(cell, ':')
	if colon < 0 {
		return errors.Wrapf(ErrMalformedHeader, "no ':' in %q", cell)
	}
	rest := cell[colon+1:]

	space := strings.IndexByte(rest, ' ')
	if space < 0 {
		return errors.Wrapf(ErrMalformedHeader, "no contract kind in %q", cell)
	}

	file, name, kind := cell[:colon], rest[:space], strings.TrimSpace(rest[space+1:])
	if file == "" || name == "" || kind == "" {
		return errors.Wrapf(ErrMalformedHeader, "empty component in %q", cell)
	}

	p.contract.File = file
	p.contract.Name = name
	p.contract.Kind = kind
	return nil
}

func (p *contractParser) deployment(row Row) error {
	if len(row) < 2 {
		return errors.Wrap(ErrMalformedDeploymentMetrics, "expected cost and size cells")
	}

	cost, err := parseGas(row[0])
	if err != nil {
		return errors.Wrapf(ErrMalformedDeploymentMetrics, "deployment cost: %v", err)
	}
	size, err := parseGas(row[1])
	if err != nil {
		return errors.Wrapf(ErrMalformedDeploymentMetrics, "deployment size: %v", err)
	}

	p.contract.DeploymentCost = cost
	p.contract.DeploymentSize = size
	return nil
}

func parseFunction(row Row) (Function, error) {
	if len(row) < functionCells {
		return Function{}, errors.Wrapf(ErrMalformedFunctionRow, "expected %d cells, got %d", functionCells, len(row))
	}
	if row[0] == "" {
		return Function{}, errors.Wrap(ErrMalformedFunctionRow, "empty function name")
	}

	var metrics [functionCells - 1]uint64
	for i := range metrics {
		v, err := parseGas(row[i+1])
		if err != nil {
			return Function{}, errors.Wrapf(ErrMalformedFunctionRow, "%s: %v", row[0], err)
		}
		metrics[i] = v
	}

	return Function{
		Name:   row[0],
		Min:    metrics[0],
		Avg:    metrics[1],
		Median: metrics[2],
		Max:    metrics[3],
		Calls:  metrics[4],
	}, nil
}

// isRule reports whether every cell is made of dashes only. A row of empty
// cells is not a rule.
func isRule(row Row) bool {
	dashes := false
	for _, cell := range row {
		if strings.Trim(cell, "-") != "" {
			return false
		}
		if cell != "" {
			dashes = true
		}
	}
	return dashes
}

func isDeploymentTitles(row Row) bool {
	if len(row) < 2 || row[0] != DeploymentCostTitle || row[1] != DeploymentSizeTitle {
		return false
	}
	return EmptyCells(row[2:]) == len(row)-2
}

func parseGas(cell string) (uint64, error) {
	v, err := strconv.ParseUint(cell, 10, 64)
	if err != nil {
		return 0, errors.Newf("%q is not an unsigned integer", cell)
	}
	return v, nil
}
