package griddiagram

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// FromCSV reads a grid diagram from CSV data in which each field is a single
// cell: empty or ' ' for a blank cell, 'x' for an OverMark, 'o' for an
// UnderMark (case-insensitive). The parsed matrix goes through the same
// validation gate as FromMatrix, so ragged input surfaces as ErrNotSquare
// and a bad marking as ErrInvalidMarking.
// Returns ErrBadCell (wrapped with the offending position) for any other
// field content.
func FromCSV(r io.Reader) (*Diagram, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // squareness is checked by FromMatrix
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("griddiagram: reading csv: %w", err)
	}

	cells := make([][]Marker, len(records))
	for i, record := range records {
		cells[i] = make([]Marker, len(record))
		for j, field := range record {
			m, err := parseCell(field)
			if err != nil {
				return nil, fmt.Errorf("griddiagram: row %d, column %d: %w", i, j, err)
			}
			cells[i][j] = m
		}
	}

	return FromMatrix(cells)
}

// FromCSVFile reads a grid diagram from the CSV file at path.
func FromCSVFile(path string) (*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("griddiagram: opening %s: %w", path, err)
	}
	defer f.Close()

	return FromCSV(f)
}

// parseCell converts a CSV field into a Marker. Surrounding whitespace is
// insignificant: "", " ", "x" and " o " are all accepted.
func parseCell(field string) (Marker, error) {
	trimmed := strings.TrimSpace(field)
	switch trimmed {
	case "":
		return Empty, nil
	default:
		if len(trimmed) > 1 {
			return Empty, ErrBadCell
		}

		return ParseMarker(rune(trimmed[0]))
	}
}
