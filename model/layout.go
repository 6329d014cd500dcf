package model

// SegmentType tags a row-pattern segment as interactive seats or a gap.
type SegmentType string

const (
	SegmentSeats SegmentType = "seats"
	SegmentGap   SegmentType = "gap"
)

// PatternSegment is a run of consecutive cells of one kind within a grid row.
type PatternSegment struct {
	Type  SegmentType `json:"type" validate:"required,oneof=seats gap"`
	Count int         `json:"count" validate:"required,min=1"`
}

// Section is a rectangular grid of rows x cols cells priced by one seat type.
// RowPatterns, when present, carries one segment sequence per grid row; rows
// without a pattern fall back to simple sequential numbering. Segment counts
// are expected to sum to Cols per row, but that is not enforced: a short
// pattern leaves its trailing cells unlabeled, which renders them as gaps.
type Section struct {
	ID          string             `json:"id" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Rows        int                `json:"rows" validate:"required,min=1"`
	Cols        int                `json:"cols" validate:"required,min=1"`
	SeatType    string             `json:"seatType" validate:"required"`
	RowPatterns [][]PatternSegment `json:"rowPatterns,omitempty" validate:"omitempty,dive,dive"`
}

// SeatType is a priced seat category. Price is in whole currency units.
type SeatType struct {
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color" validate:"required"`
	Price int    `json:"price" validate:"min=0"`
}

// Layout is the immutable configuration for one screen: its ordered sections
// and the catalog of seat types they reference. The core never mutates it.
type Layout struct {
	Sections  []Section           `json:"sections" validate:"required,min=1,dive"`
	SeatTypes map[string]SeatType `json:"seatTypes" validate:"required,dive"`
}

// SectionByID returns the section with the given id, or nil.
func (l *Layout) SectionByID(id string) *Section {
	for i := range l.Sections {
		if l.Sections[i].ID == id {
			return &l.Sections[i]
		}
	}
	return nil
}

// SeatTypeFor resolves the seat type of a section id. The zero SeatType is
// returned when either side of the lookup is missing.
func (l *Layout) SeatTypeFor(sectionID string) SeatType {
	section := l.SectionByID(sectionID)
	if section == nil {
		return SeatType{}
	}
	return l.SeatTypes[section.SeatType]
}

// TheaterConfig names a layout so the user can pick among several screens.
type TheaterConfig struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Layout         *Layout `json:"layout" validate:"required"`
	ScreenImageURL string  `json:"screenImageUrl,omitempty"`
}
