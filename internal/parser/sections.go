package parser

// SplitSections groups rows into one section per contract.
//
// A single boundary means the whole table is one section. With several
// boundaries the first section starts at row 0 and runs up to the second
// boundary, every later section runs from its boundary up to the next one and
// the last runs to the end. Rows before the first boundary stay in the first
// section so that a malformed preamble fails the header check instead of
// being skipped. No boundary at all yields no sections.
func SplitSections(rows []Row) [][]Row {
	var bounds []int
	for i, row := range rows {
		if IsBoundary(row) {
			bounds = append(bounds, i)
		}
	}

	switch len(bounds) {
	case 0:
		return nil
	case 1:
		return [][]Row{rows}
	}

	sections := make([][]Row, 0, len(bounds))
	sections = append(sections, rows[:bounds[1]])
	for i := 1; i < len(bounds)-1; i++ {
		sections = append(sections, rows[bounds[i]:bounds[i+1]])
	}
	sections = append(sections, rows[bounds[len(bounds)-1]:])

	return sections
}
