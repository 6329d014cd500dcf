package seating

import "seatgrid-cli/model"

// Committer finalizes a selection by flipping every selected seat to booked.
type Committer struct {
	store *Store
}

// NewCommitter binds the committer to its store.
func NewCommitter(store *Store) *Committer {
	return &Committer{store: store}
}

// Commit books all currently selected seats in a single mutation, so no
// reader ever observes a partially committed collection. Booked is terminal.
// Committing with nothing selected produces an identical collection and is
// not an error.
func (c *Committer) Commit() {
	c.store.Mutate(func(seats map[string]model.Seat) map[string]model.Seat {
		for key, seat := range seats {
			if seat.Status == model.StatusSelected {
				seat.Status = model.StatusBooked
				seats[key] = seat
			}
		}
		return seats
	})
}
