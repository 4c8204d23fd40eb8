package parser

// Row is one tokenized report line, cells trimmed of surrounding whitespace
type Row []string

// Function represents the gas usage of a single contract function
type Function struct {
	Name   string
	Min    uint64
	Avg    uint64
	Median uint64
	Max    uint64
	Calls  uint64
}

// Contract represents one contract section of the gas report
type Contract struct {
	File           string
	Name           string
	Kind           string // contract, library, interface...
	DeploymentCost uint64
	DeploymentSize uint64
	Functions      []Function
}

// ID returns the fully qualified contract identifier (file:name)
func (c Contract) ID() string {
	return c.File + ":" + c.Name
}

// GasTable represents a fully parsed gas report
type GasTable struct {
	Contracts []Contract
}

// FunctionCount returns the number of functions across all contracts
func (t *GasTable) FunctionCount() int {
	n := 0
	for _, c := range t.Contracts {
		n += len(c.Functions)
	}
	return n
}
