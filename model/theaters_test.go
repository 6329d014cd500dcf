package model

import "testing"

func TestBuiltinTheaters_PatternsFitTheirRows(t *testing.T) {
	for _, theater := range BuiltinTheaters() {
		for _, section := range theater.Layout.Sections {
			if len(section.RowPatterns) == 0 {
				continue
			}
			if len(section.RowPatterns) != section.Rows {
				t.Fatalf("theater %s section %s: %d patterns for %d rows",
					theater.ID, section.ID, len(section.RowPatterns), section.Rows)
			}
			for row, pattern := range section.RowPatterns {
				sum := 0
				for _, segment := range pattern {
					sum += segment.Count
				}
				// A pattern may cover fewer columns than the row has; the
				// uncovered tail degrades to gaps. It must never overrun.
				if sum > section.Cols {
					t.Fatalf("theater %s section %s row %d: pattern covers %d of %d cols",
						theater.ID, section.ID, row, sum, section.Cols)
				}
			}
		}
	}
}

func TestBuiltinTheaters_SeatTypesResolve(t *testing.T) {
	for _, theater := range BuiltinTheaters() {
		for _, section := range theater.Layout.Sections {
			if _, ok := theater.Layout.SeatTypes[section.SeatType]; !ok {
				t.Fatalf("theater %s section %s references unknown seat type %q",
					theater.ID, section.ID, section.SeatType)
			}
			seatType := theater.Layout.SeatTypeFor(section.ID)
			if seatType.Price < 0 {
				t.Fatalf("theater %s seat type %q has negative price", theater.ID, section.SeatType)
			}
		}
	}
}

func TestSeatKey(t *testing.T) {
	if got := SeatKey("gold-t1", 2, 11); got != "gold-t1-2-11" {
		t.Fatalf("expected gold-t1-2-11, got %q", got)
	}
}

func TestLayoutLookups(t *testing.T) {
	layout := BuiltinTheaters()[0].Layout

	if section := layout.SectionByID("platinum-t1"); section == nil || section.Name != "Platinum Arena" {
		t.Fatalf("expected Platinum Arena, got %+v", section)
	}
	if section := layout.SectionByID("missing"); section != nil {
		t.Fatalf("expected nil for unknown section, got %+v", section)
	}
	if seatType := layout.SeatTypeFor("platinum-t1"); seatType.Price != 350 {
		t.Fatalf("expected price 350, got %d", seatType.Price)
	}
	if seatType := layout.SeatTypeFor("missing"); seatType.Price != 0 {
		t.Fatalf("expected zero seat type for unknown section, got %+v", seatType)
	}
}
