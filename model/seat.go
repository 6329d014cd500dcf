package model

import "fmt"

// SeatStatus is the lifecycle state of a single seat.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "available"
	StatusSelected  SeatStatus = "selected"
	StatusBooked    SeatStatus = "booked"
)

// KeySeparator joins the section id and grid coordinates into a seat key.
const KeySeparator = "-"

// Seat is one cell of a section grid. A seat with an empty DisplayLabel is a
// non-interactive gap; gaps are created directly in StatusBooked and are never
// offered for selection.
type Seat struct {
	Key          string     `json:"key"`
	SectionID    string     `json:"sectionId"`
	Row          int        `json:"row"`
	Col          int        `json:"col"`
	Status       SeatStatus `json:"status"`
	DisplayLabel string     `json:"displayLabel"`
}

// IsGap reports whether the seat is a non-interactive placeholder cell.
func (s Seat) IsGap() bool {
	return s.DisplayLabel == ""
}

// SeatKey composes the canonical key for a grid cell. Row and col are
// 0-indexed, row 0 being the top of the grid.
func SeatKey(sectionID string, row, col int) string {
	return fmt.Sprintf("%s%s%d%s%d", sectionID, KeySeparator, row, KeySeparator, col)
}
