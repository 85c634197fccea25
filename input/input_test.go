package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const caseYAML = `
Title: unit square
Element: quad4
Coords:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
Points:
  - [0, 0]
  - [0.5, -0.5]
Field:
  - [1]
  - [2]
  - [3]
  - [4]
`

func TestParseCase(t *testing.T) {
	ec := &ElementCase{}
	require.NoError(t, ec.Parse([]byte(caseYAML)))
	require.NoError(t, ec.Validate())

	assert.Equal(t, "unit square", ec.Title)
	assert.Equal(t, "quad4", ec.Element)
	require.Len(t, ec.Coords, 4)
	assert.Equal(t, []float64{1, 1}, ec.Coords[2])
	require.Len(t, ec.Points, 2)
	require.Len(t, ec.Field, 4)
}

func TestValidateRejectsBadCases(t *testing.T) {
	ec := &ElementCase{}
	require.Error(t, ec.Validate()) // no element name

	ec = &ElementCase{Element: "quad4"}
	require.Error(t, ec.Validate()) // no coords

	ec = &ElementCase{
		Element: "quad4",
		Coords:  [][]float64{{0, 0}, {1}},
		Points:  [][]float64{{0, 0}},
	}
	require.Error(t, ec.Validate()) // ragged coords

	ec = &ElementCase{
		Element: "quad4",
		Coords:  [][]float64{{0, 0}, {1, 0}},
	}
	require.Error(t, ec.Validate()) // no points

	ec = &ElementCase{
		Element: "quad4",
		Coords:  [][]float64{{0, 0}, {1, 0}},
		Points:  [][]float64{{0, 0}},
		Field:   [][]float64{{1}},
	}
	require.Error(t, ec.Validate()) // field/coords length mismatch
}
