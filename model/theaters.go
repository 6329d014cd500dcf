package model

// BuiltinTheaters are the stock screen configurations shipped with the app.
// A user-supplied layout file replaces this list entirely.
func BuiltinTheaters() []TheaterConfig {
	return []TheaterConfig{
		{
			ID:             "theater1",
			Name:           "Cinema Paradiso - Screen 1",
			Layout:         theater1Layout(),
			ScreenImageURL: "/assets/screen.png",
		},
		{
			ID:     "theater2",
			Name:   "Majestic Movies - Audi A",
			Layout: theater2Layout(),
		},
		{
			ID:     "theater3",
			Name:   "Indieplex - Hall C (Mixed Seating)",
			Layout: theater3Layout(),
		},
	}
}

func theater1Layout() *Layout {
	splitRow := []PatternSegment{
		{Type: SegmentSeats, Count: 2},
		{Type: SegmentGap, Count: 1},
		{Type: SegmentSeats, Count: 6},
		{Type: SegmentGap, Count: 1},
		{Type: SegmentSeats, Count: 2},
	}
	return &Layout{
		Sections: []Section{
			{
				ID:          "platinum-t1",
				Name:        "Platinum Arena",
				SeatType:    "platinum",
				Rows:        2,
				Cols:        12,
				RowPatterns: [][]PatternSegment{splitRow, splitRow},
			},
			{
				ID:       "gold-t1",
				Name:     "Gold Circle",
				SeatType: "gold",
				Rows:     5,
				Cols:     22,
				RowPatterns: repeatPattern(5, []PatternSegment{
					{Type: SegmentSeats, Count: 7},
					{Type: SegmentGap, Count: 1},
					{Type: SegmentSeats, Count: 14},
				}),
			},
			{
				ID:       "loungers-t1",
				Name:     "Luxury Loungers",
				SeatType: "loungers",
				Rows:     1,
				Cols:     15,
				RowPatterns: repeatPattern(1, []PatternSegment{
					{Type: SegmentSeats, Count: 5},
					{Type: SegmentGap, Count: 1},
					{Type: SegmentSeats, Count: 9},
				}),
			},
		},
		SeatTypes: map[string]SeatType{
			"platinum":    {Icon: "◆", Color: "#E5E4E2", Price: 350},
			"gold":        {Icon: "●", Color: "#FFD700", Price: 295},
			"loungers":    {Icon: "▬", Color: "#D3D3D3", Price: 295},
			"unavailable": {Icon: "∅", Color: "#A9A9A9", Price: 0},
		},
	}
}

func theater2Layout() *Layout {
	return &Layout{
		Sections: []Section{
			{
				ID:       "vip-t2",
				Name:     "VIP Box",
				SeatType: "vip",
				Rows:     2,
				Cols:     4,
				RowPatterns: repeatPattern(2, []PatternSegment{
					{Type: SegmentSeats, Count: 4},
				}),
			},
			{
				ID:       "regular-t2",
				Name:     "Main Auditorium",
				SeatType: "regular",
				Rows:     8,
				Cols:     22,
				RowPatterns: repeatPattern(8, []PatternSegment{
					{Type: SegmentSeats, Count: 10},
					{Type: SegmentGap, Count: 2},
					{Type: SegmentSeats, Count: 10},
				}),
			},
		},
		SeatTypes: map[string]SeatType{
			"vip":         {Icon: "◆", Color: "#C0C0C0", Price: 500},
			"regular":     {Icon: "●", Color: "#ADD8E6", Price: 200},
			"unavailable": {Icon: "∅", Color: "#A9A9A9", Price: 0},
		},
	}
}

func theater3Layout() *Layout {
	logeRow := []PatternSegment{
		{Type: SegmentSeats, Count: 3},
		{Type: SegmentGap, Count: 1},
		{Type: SegmentSeats, Count: 3},
	}
	return &Layout{
		Sections: []Section{
			{
				ID:       "balcony-t3",
				Name:     "Upper Balcony",
				SeatType: "balcony",
				Rows:     2,
				Cols:     12,
				RowPatterns: [][]PatternSegment{
					{{Type: SegmentSeats, Count: 10}},
					{{Type: SegmentSeats, Count: 12}},
				},
			},
			{
				ID:          "loge-t3",
				Name:        "Loge Boxes",
				SeatType:    "loge",
				Rows:        2,
				Cols:        7,
				RowPatterns: [][]PatternSegment{logeRow, logeRow},
			},
			{
				ID:       "economy-t3",
				Name:     "Economy Plus",
				SeatType: "economy_plus",
				Rows:     4,
				Cols:     15,
				RowPatterns: repeatPattern(4, []PatternSegment{
					{Type: SegmentSeats, Count: 15},
				}),
			},
		},
		SeatTypes: map[string]SeatType{
			"balcony":      {Color: "#B0E0E6", Price: 150},
			"loge":         {Icon: "◆", Color: "#DAA520", Price: 250},
			"economy_plus": {Color: "#90EE90", Price: 180},
			"unavailable":  {Icon: "∅", Color: "#A9A9A9", Price: 0},
		},
	}
}

func repeatPattern(rows int, pattern []PatternSegment) [][]PatternSegment {
	patterns := make([][]PatternSegment, rows)
	for i := range patterns {
		patterns[i] = pattern
	}
	return patterns
}
