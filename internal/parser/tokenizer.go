package parser

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// Delimiter separates cells in a report row
	Delimiter = "|"

	// BoundaryEmptyCells is the number of empty cells that marks a contract header row
	BoundaryEmptyCells = 5
)

// Tokenize splits raw report text into rows. Lines without a delimiter carry
// no table data and are dropped.
func Tokenize(input string) []Row {
	var rows []Row

	for _, line := range strings.Split(input, "\n") {
		if !strings.Contains(line, Delimiter) {
			continue
		}

		line = strings.Trim(strings.TrimSpace(line), Delimiter)
		cells := strings.Split(line, Delimiter)

		row := make(Row, len(cells))
		for i, cell := range cells {
			row[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}

	return rows
}

// EmptyCells counts the empty cells in a row
func EmptyCells(row Row) int {
	return lo.CountBy(row, func(cell string) bool {
		return cell == ""
	})
}

// IsBoundary reports whether a row opens a new contract section
func IsBoundary(row Row) bool {
	return EmptyCells(row) == BoundaryEmptyCells
}
