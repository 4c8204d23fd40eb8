package parser

import (
	"github.com/cockroachdb/errors"
)

// Parse parses forge gas report output into a GasTable. Any malformed
// section fails the whole parse.
func Parse(input string) (*GasTable, error) {
	sections := SplitSections(Tokenize(input))
	if len(sections) == 0 {
		return nil, errors.WithHint(ErrNoSections,
			"expected the table printed by `forge test --gas-report`")
	}

	table := &GasTable{
		Contracts: make([]Contract, 0, len(sections)),
	}
	for i, section := range sections {
		contract, err := ParseContract(i, section)
		if err != nil {
			return nil, err
		}
		table.Contracts = append(table.Contracts, contract)
	}

	return table, nil
}
