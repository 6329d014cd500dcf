package seating

import (
	"fmt"
	"sort"

	"seatgrid-cli/model"
)

// DefaultMaxSelectableSeats caps how many seats one order may hold.
const DefaultMaxSelectableSeats = 10

// Selector enforces the selection rules: booked seats and gaps are inert,
// deselection is always allowed, and selecting past the cap is rejected with
// a user-facing notification instead of an error.
type Selector struct {
	store    *Store
	notifier *Notifier
	maxSeats int
}

// NewSelector wires the selection rules to a store and notifier. A
// non-positive maxSeats falls back to DefaultMaxSelectableSeats.
func NewSelector(store *Store, notifier *Notifier, maxSeats int) *Selector {
	if maxSeats <= 0 {
		maxSeats = DefaultMaxSelectableSeats
	}
	return &Selector{store: store, notifier: notifier, maxSeats: maxSeats}
}

// MaxSeats returns the configured selection cap.
func (sel *Selector) MaxSeats() int {
	return sel.maxSeats
}

// Toggle flips the seat at (sectionID, row, col) between available and
// selected. Unknown keys, booked seats, and gaps are silent no-ops. Selection
// beyond the cap leaves the seat untouched and shows a notification.
func (sel *Selector) Toggle(sectionID string, row, col int) {
	key := model.SeatKey(sectionID, row, col)
	seats := sel.store.Seats()
	seat, ok := seats[key]
	if !ok || seat.Status == model.StatusBooked || seat.IsGap() {
		return
	}

	switch seat.Status {
	case model.StatusSelected:
		sel.setStatus(key, model.StatusAvailable)
	case model.StatusAvailable:
		if sel.SelectedCount() >= sel.maxSeats {
			sel.notifier.Show(fmt.Sprintf("You can select a maximum of %d seats.", sel.maxSeats))
			return
		}
		sel.setStatus(key, model.StatusSelected)
	}
}

func (sel *Selector) setStatus(key string, status model.SeatStatus) {
	sel.store.Mutate(func(seats map[string]model.Seat) map[string]model.Seat {
		seat, ok := seats[key]
		if !ok {
			return seats
		}
		seat.Status = status
		seats[key] = seat
		return seats
	})
}

// SelectedCount is derived from the live collection on every call; it always
// equals the literal number of selected seats.
func (sel *Selector) SelectedCount() int {
	count := 0
	for _, seat := range sel.store.Seats() {
		if seat.Status == model.StatusSelected {
			count++
		}
	}
	return count
}

// SelectedSeats returns the selected seats ordered by key, for summaries.
func (sel *Selector) SelectedSeats() []model.Seat {
	var selected []model.Seat
	for _, seat := range sel.store.Seats() {
		if seat.Status == model.StatusSelected {
			selected = append(selected, seat)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Key < selected[j].Key
	})
	return selected
}

// SelectedTotal sums the prices of the selected seats using the layout's
// seat-type catalog.
func (sel *Selector) SelectedTotal() int {
	layout := sel.store.Layout()
	if layout == nil {
		return 0
	}
	total := 0
	for _, seat := range sel.SelectedSeats() {
		total += layout.SeatTypeFor(seat.SectionID).Price
	}
	return total
}
