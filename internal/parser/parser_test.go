package parser

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterReport = `
Compiling 1 files with 0.8.19
Ran 2 tests for test/Counter.t.sol:CounterTest
[PASS] testIncrement() (gas: 28334)
[PASS] testSetNumber(uint256) (runs: 256, μ: 27553, ~: 28409)
| src/Counter.sol:Counter contract |                 |       |        |       |         |
|----------------------------------|-----------------|-------|--------|-------|---------|
| Deployment Cost                  | Deployment Size |       |        |       |         |
| 106715                           | 373             |       |        |       |         |
| Function Name                    | min             | avg   | median | max   | # calls |
| increment                        | 22340           | 22340 | 22340  | 22340 | 1       |
| number                           | 283             | 283   | 283    | 283   | 257     |
| setNumber                        | 2390            | 19980 | 22290  | 22290 | 257     |


Ran 1 test suite: 2 tests passed, 0 failed, 0 skipped (2 total tests)
`

const multiReport = `
| src/Token.sol:Token contract |                 |       |        |       |         |
|------------------------------|-----------------|-------|--------|-------|---------|
| Deployment Cost              | Deployment Size |       |        |       |         |
| 500000                       | 2500            |       |        |       |         |
| Function Name                | min             | avg   | median | max   | # calls |
| transfer                     | 100             | 200   | 150    | 300   | 4       |
| approve                      | 10              | 20    | 15     | 30    | 2       |


| src/Math.sol:Math library |                 |   |        |     |         |
|---------------------------|-----------------|---|--------|-----|---------|
| Deployment Cost           | Deployment Size |   |        |     |         |
| 7000                      | 60              |   |        |     |         |
| Function Name             | min             | avg | median | max | # calls |


| src/Vault.sol:Vault contract |                 |      |        |      |         |
|------------------------------|-----------------|------|--------|------|---------|
| Deployment Cost              | Deployment Size |      |        |      |         |
| 900000                       | 4200            |      |        |      |         |
| Function Name                | min             | avg  | median | max  | # calls |
| deposit                      | 1000            | 2000 | 1500   | 3000 | 10      |
`

func TestParseSingleContract(t *testing.T) {
	table, err := Parse(counterReport)
	require.NoError(t, err)
	require.Len(t, table.Contracts, 1)

	c := table.Contracts[0]
	assert.Equal(t, "src/Counter.sol", c.File)
	assert.Equal(t, "Counter", c.Name)
	assert.Equal(t, "contract", c.Kind)
	assert.Equal(t, "src/Counter.sol:Counter", c.ID())
	assert.Equal(t, uint64(106715), c.DeploymentCost)
	assert.Equal(t, uint64(373), c.DeploymentSize)

	require.Len(t, c.Functions, 3)
	assert.Equal(t, Function{Name: "setNumber", Min: 2390, Avg: 19980, Median: 22290, Max: 22290, Calls: 257}, c.Functions[2])
}

func TestParseMultipleContracts(t *testing.T) {
	table, err := Parse(multiReport)
	require.NoError(t, err)
	require.Len(t, table.Contracts, 3)

	assert.Equal(t, "Token", table.Contracts[0].Name)
	assert.Equal(t, "Math", table.Contracts[1].Name)
	assert.Equal(t, "library", table.Contracts[1].Kind)
	assert.Empty(t, table.Contracts[1].Functions, "deployment-only contracts are legal")
	assert.Equal(t, "Vault", table.Contracts[2].Name)
	assert.Equal(t, 3, table.FunctionCount())
}

func TestParseSectionCount(t *testing.T) {
	section := func(name string) string {
		return strings.Join([]string{
			"| src/" + name + ".sol:" + name + " contract | | | | | |",
			"|---|---|---|---|---|---|",
			"| Deployment Cost | Deployment Size | | | | |",
			"| 10 | 1 | | | | |",
			"| Function Name | min | avg | median | max | # calls |",
			"| f | 1 | 2 | 3 | 4 | 5 |",
		}, "\n")
	}

	for n := 1; n <= 6; n++ {
		var parts []string
		for i := 0; i < n; i++ {
			parts = append(parts, section(strings.Repeat("C", i+1)))
		}

		table, err := Parse(strings.Join(parts, "\n\n"))
		require.NoError(t, err)
		assert.Len(t, table.Contracts, n)
		for i, c := range table.Contracts {
			assert.Equal(t, strings.Repeat("C", i+1), c.Name)
		}
	}
}

func TestParseNoSections(t *testing.T) {
	_, err := Parse("No tests found.\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSections))
	assert.NotEmpty(t, errors.FlattenHints(err))
}

func TestParseMalformedSections(t *testing.T) {
	header := "| src/A.sol:A contract | | | | | |"
	rule := "|---|---|---|---|---|---|"
	titles := "| Deployment Cost | Deployment Size | | | | |"
	deploy := "| 100 | 10 | | | | |"
	fnTitles := "| Function Name | min | avg | median | max | # calls |"

	tests := []struct {
		name  string
		lines []string
		want  error
		state State
	}{
		{
			name:  "header without colon",
			lines: []string{"| src/A.sol A contract | | | | | |", rule, titles, deploy, fnTitles},
			want:  ErrMalformedHeader,
			state: ExpectHeader,
		},
		{
			name:  "header without kind",
			lines: []string{"| src/A.sol:A | | | | | |", rule, titles, deploy, fnTitles},
			want:  ErrMalformedHeader,
			state: ExpectHeader,
		},
		{
			name:  "separator with text",
			lines: []string{header, "|---|abc|---|---|---|---|", titles, deploy, fnTitles},
			want:  ErrMalformedSeparator,
			state: ExpectSeparator,
		},
		{
			name:  "wrong column titles",
			lines: []string{header, rule, "| Deploy Cost | Deployment Size | | | | |", deploy, fnTitles},
			want:  ErrUnexpectedColumnTitles,
			state: ExpectColumnTitles,
		},
		{
			name:  "column titles swapped",
			lines: []string{header, rule, "| Deployment Size | Deployment Cost | | | | |", deploy, fnTitles},
			want:  ErrUnexpectedColumnTitles,
			state: ExpectColumnTitles,
		},
		{
			name:  "missing deployment row",
			lines: []string{header, rule, titles},
			want:  ErrMissingRow,
			state: ExpectDeploymentMetrics,
		},
		{
			name:  "non-numeric deployment cost",
			lines: []string{header, rule, titles, "| lots | 10 | | | | |", fnTitles},
			want:  ErrMalformedDeploymentMetrics,
			state: ExpectDeploymentMetrics,
		},
		{
			name:  "negative deployment size",
			lines: []string{header, rule, titles, "| 100 | -1 | | | | |", fnTitles},
			want:  ErrMalformedDeploymentMetrics,
			state: ExpectDeploymentMetrics,
		},
		{
			name:  "missing function title row",
			lines: []string{header, rule, titles, deploy},
			want:  ErrMissingRow,
			state: ExpectFunctionTitleRow,
		},
		{
			name:  "short function row",
			lines: []string{header, rule, titles, deploy, fnTitles, "| f | 1 | 2 |"},
			want:  ErrMalformedFunctionRow,
			state: ConsumeFunctionRows,
		},
		{
			name:  "non-numeric function metric",
			lines: []string{header, rule, titles, deploy, fnTitles, "| f | 1 | 2 | x | 4 | 5 |"},
			want:  ErrMalformedFunctionRow,
			state: ConsumeFunctionRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse(strings.Join(tt.lines, "\n"))
			require.Error(t, err)
			assert.Nil(t, table)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.state, perr.State)
			assert.Equal(t, 0, perr.Section)
		})
	}
}

func TestParseErrorLocation(t *testing.T) {
	input := strings.Replace(multiReport, "| 7000                      | 60 ", "| 7000                      | ?? ", 1)

	_, err := Parse(input)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Section)
	assert.Equal(t, 3, perr.Row)
	assert.Equal(t, ExpectDeploymentMetrics, perr.State)
	assert.Contains(t, err.Error(), "section 2, row 4 (expect-deployment-metrics)")
}

func TestParseMisalignedSectionsFail(t *testing.T) {
	// A stray row with five empty cells splits the Token section in two
	input := strings.Replace(multiReport,
		"| approve                      | 10              | 20    | 15     | 30    | 2       |",
		"| note | | | | | |", 1)

	_, err := Parse(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedHeader) || errors.Is(err, ErrMalformedSeparator), "got %v", err)
}
