package parser

import "github.com/samber/lo"

// Totals holds whole-report gas sums
type Totals struct {
	DeploymentCost uint64
	MinCost        uint64
	AvgCost        uint64
	MedianCost     uint64
	MaxCost        uint64
}

// DeploymentCost sums the deployment cost of every contract
func (t *GasTable) DeploymentCost() uint64 {
	return lo.SumBy(t.Contracts, func(c Contract) uint64 {
		return c.DeploymentCost
	})
}

// MinCost sums the minimum call cost of every function
func (t *GasTable) MinCost() uint64 {
	return t.sumFunctions(func(f Function) uint64 { return f.Min })
}

// AvgCost sums the average call cost of every function
func (t *GasTable) AvgCost() uint64 {
	return t.sumFunctions(func(f Function) uint64 { return f.Avg })
}

// MedianCost sums the median call cost of every function
func (t *GasTable) MedianCost() uint64 {
	return t.sumFunctions(func(f Function) uint64 { return f.Median })
}

// MaxCost sums the maximum call cost of every function
func (t *GasTable) MaxCost() uint64 {
	return t.sumFunctions(func(f Function) uint64 { return f.Max })
}

// Totals computes every sum in one call
func (t *GasTable) Totals() Totals {
	return Totals{
		DeploymentCost: t.DeploymentCost(),
		MinCost:        t.MinCost(),
		AvgCost:        t.AvgCost(),
		MedianCost:     t.MedianCost(),
		MaxCost:        t.MaxCost(),
	}
}

func (t *GasTable) sumFunctions(metric func(Function) uint64) uint64 {
	return lo.SumBy(t.Contracts, func(c Contract) uint64 {
		return lo.SumBy(c.Functions, metric)
	})
}
