// Package seating implements the seat state model for one screen layout: a
// label calculator for the section grids, the seat store and its persistence,
// the selection rules, the booking commit, and the notification slot the
// selection rules report through.
package seating

import (
	"fmt"

	"seatgrid-cli/model"
)

// LabelFor maps a grid cell of a section to its display label, or to the
// empty string when the cell is a gap. Row letters run backwards: row 0 is
// the back of the hall and gets the highest letter, so the front row (highest
// row index) is always row A.
//
// Pure and deterministic; the label of any cell is re-derivable from
// (section, row, col) alone.
func LabelFor(section *model.Section, row, col int) string {
	letter := rune('A' + section.Rows - 1 - row)

	// Only a missing row falls back to sequential numbering. A present but
	// empty pattern covers no columns, so the whole row reads as gaps.
	if len(section.RowPatterns) <= row || section.RowPatterns[row] == nil {
		return fmt.Sprintf("%c%d", letter, col+1)
	}

	gridCol := 0
	seatNumber := 0
	for _, segment := range section.RowPatterns[row] {
		switch segment.Type {
		case model.SegmentSeats:
			for i := 0; i < segment.Count; i++ {
				if gridCol == col {
					return fmt.Sprintf("%c%d", letter, seatNumber+1)
				}
				seatNumber++
				gridCol++
			}
		case model.SegmentGap:
			if col >= gridCol && col < gridCol+segment.Count {
				return ""
			}
			gridCol += segment.Count
		}
	}

	// col beyond the pattern's coverage: treated as a gap.
	return ""
}
