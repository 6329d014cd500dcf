package seating

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"seatgrid-cli/model"
	"seatgrid-cli/store"
)

// currentLayoutSlot is the single fixed slot the seat collection is cached
// under, scoped per theater by the KV backend itself.
const currentLayoutSlot = "currentLayout"

type seatsEnvelope struct {
	UpdatedAt time.Time             `json:"updated_at"`
	Theater   string                `json:"theater"`
	Seats     map[string]model.Seat `json:"seats"`
}

// Store owns the seat collection for one theater layout. All mutation goes
// through Mutate; every committed collection is pushed to the persistence
// collaborator in the background and announced to subscribers. The in-memory
// collection is authoritative for the session: persistence failures are
// logged and otherwise ignored.
//
// Store is not safe for concurrent mutation; the widget runs its entry points
// to completion one at a time.
type Store struct {
	kv        store.KV
	layout    *model.Layout
	theaterID string
	logger    *zap.Logger

	seats map[string]model.Seat
	subs  []func()
}

// New creates a store bound to its layout and persistence handle. The seat
// collection is empty until Initialize or Load runs.
func New(kv store.KV, layout *model.Layout, theaterID string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:        kv,
		layout:    layout,
		theaterID: theaterID,
		logger:    logger,
		seats:     map[string]model.Seat{},
	}
}

// Layout returns the immutable configuration the store was built from.
func (s *Store) Layout() *model.Layout {
	return s.layout
}

// Seats returns the current collection. Callers must treat it as read-only;
// it is replaced wholesale on every mutation.
func (s *Store) Seats() map[string]model.Seat {
	return s.seats
}

// Subscribe registers fn to run after every committed mutation, including
// Initialize and Load. Callbacks run synchronously on the mutating call.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Initialize rebuilds the seat collection from the layout, discarding any
// prior state. Cells whose label is empty are gaps and enter booked
// immediately. A nil or sectionless layout degrades to an empty collection.
func (s *Store) Initialize() {
	if s.layout == nil || len(s.layout.Sections) == 0 {
		s.logger.Error("cannot initialize seats: layout or sections missing",
			zap.String("theater", s.theaterID))
		s.commit(map[string]model.Seat{})
		return
	}

	seats := make(map[string]model.Seat)
	for _, section := range s.layout.Sections {
		for r := 0; r < section.Rows; r++ {
			for c := 0; c < section.Cols; c++ {
				key := model.SeatKey(section.ID, r, c)
				label := LabelFor(&section, r, c)
				status := model.StatusAvailable
				if label == "" {
					status = model.StatusBooked
				}
				seats[key] = model.Seat{
					Key:          key,
					SectionID:    section.ID,
					Row:          r,
					Col:          c,
					Status:       status,
					DisplayLabel: label,
				}
			}
		}
	}
	s.logger.Debug("initialized seat collection",
		zap.String("theater", s.theaterID), zap.Int("seats", len(seats)))
	s.commit(seats)
}

// Load restores a previously persisted collection when one exists and looks
// compatible with the current layout, and falls back to Initialize otherwise.
// Compatibility is a sniff, not a schema check: the saved collection must be
// non-empty and contain at least one key under the layout's first section id.
func (s *Store) Load(ctx context.Context) {
	saved, ok := s.loadSaved(ctx)
	if !ok {
		s.Initialize()
		return
	}
	s.logger.Debug("loaded seat collection from cache",
		zap.String("theater", s.theaterID), zap.Int("seats", len(saved)))
	s.commit(saved)
}

func (s *Store) loadSaved(ctx context.Context) (map[string]model.Seat, bool) {
	if s.kv == nil || s.layout == nil || len(s.layout.Sections) == 0 {
		return nil, false
	}

	data, found, err := s.kv.Get(ctx, currentLayoutSlot)
	if err != nil {
		s.logger.Warn("failed to load seats from cache, re-initializing",
			zap.String("theater", s.theaterID), zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	var envelope seatsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.logger.Warn("invalid cached seat data, re-initializing",
			zap.String("theater", s.theaterID), zap.Error(err))
		return nil, false
	}
	if len(envelope.Seats) == 0 {
		return nil, false
	}

	prefix := s.layout.Sections[0].ID + model.KeySeparator
	for key := range envelope.Seats {
		if strings.HasPrefix(key, prefix) {
			return envelope.Seats, true
		}
	}
	s.logger.Warn("cached seat keys do not match current layout, re-initializing",
		zap.String("theater", s.theaterID))
	return nil, false
}

// Mutate applies a pure prev -> next transformation and commits the result as
// the new collection. This is the only mutation path open to the selection
// and booking components. The updater receives a copy and must return the
// full next collection.
func (s *Store) Mutate(updater func(map[string]model.Seat) map[string]model.Seat) {
	prev := make(map[string]model.Seat, len(s.seats))
	for key, seat := range s.seats {
		prev[key] = seat
	}
	s.commit(updater(prev))
}

func (s *Store) commit(seats map[string]model.Seat) {
	if seats == nil {
		seats = map[string]model.Seat{}
	}
	s.seats = seats
	for _, fn := range s.subs {
		fn()
	}
	if len(seats) > 0 {
		go s.persist(seats)
	}
}

// persist runs in the background; a committed collection is never mutated
// again, so reading it here is safe. Failures never revert in-memory state.
func (s *Store) persist(seats map[string]model.Seat) {
	if s.kv == nil {
		return
	}
	payload, err := json.Marshal(seatsEnvelope{
		UpdatedAt: time.Now(),
		Theater:   s.theaterID,
		Seats:     seats,
	})
	if err != nil {
		s.logger.Warn("failed to encode seats for cache",
			zap.String("theater", s.theaterID), zap.Error(err))
		return
	}
	if err := s.kv.Put(context.Background(), currentLayoutSlot, payload); err != nil {
		s.logger.Warn("failed to save seats to cache",
			zap.String("theater", s.theaterID), zap.Error(err))
	}
}
