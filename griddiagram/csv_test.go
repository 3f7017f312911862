package griddiagram_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridknot/griddiagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromCSV parses an in-memory diagram and agrees with FromMatrix.
func TestFromCSV(t *testing.T) {
	d, err := griddiagram.FromCSV(strings.NewReader("x,o\no,x\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Resolution())
	assert.Equal(t, unknot(t).String(), d.String())
}

// TestFromCSV_Errors covers the loader's rejection paths.
func TestFromCSV_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"BadCell", "x,#\no,x\n", griddiagram.ErrBadCell},
		{"MultiRuneCell", "x,oo\no,x\n", griddiagram.ErrBadCell},
		{"Ragged", "x,o\no\n", griddiagram.ErrNotSquare},
		{"NotSquare", "x,o, \no,x, \n", griddiagram.ErrNotSquare},
		{"BadMarking", "x,x\no,o\n", griddiagram.ErrInvalidMarking},
		{"Empty", "", griddiagram.ErrEmptyDiagram},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := griddiagram.FromCSV(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromCSVFile loads the bundled trefoil diagram from disk.
func TestFromCSVFile(t *testing.T) {
	d, err := griddiagram.FromCSVFile("testdata/trefoil.csv")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Resolution())
	assert.Equal(t, trefoil(t).String(), d.String())

	_, err = griddiagram.FromCSVFile("testdata/missing.csv")
	assert.Error(t, err)
}
