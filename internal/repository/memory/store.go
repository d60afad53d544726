// Package memory provides in-process implementations of the repository
// interfaces. Seat mutations on one fare are serialised by that fare's
// mutex; different fares proceed in parallel.
//
// Lock order: fareEntry.mu, then Store.mu.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"flight-fare-ledger/internal/model"
	"flight-fare-ledger/internal/repository"
	apperrors "flight-fare-ledger/pkg/app_errors"

	"github.com/google/uuid"
)

type fareEntry struct {
	mu        sync.Mutex
	fare      model.FareRecord
	movements []model.SeatMovement
}

type Store struct {
	mu          sync.RWMutex
	inventories map[uuid.UUID]*model.FlightInventory
	fares       map[uuid.UUID]*fareEntry
	faresByInv  map[uuid.UUID][]uuid.UUID
	bookings    map[uuid.UUID]*model.Booking
	quoteToBook map[uuid.UUID]uuid.UUID
	references  map[string]struct{}
	movementSeq atomic.Int64
}

func NewStore() *Store {
	return &Store{
		inventories: make(map[uuid.UUID]*model.FlightInventory),
		fares:       make(map[uuid.UUID]*fareEntry),
		faresByInv:  make(map[uuid.UUID][]uuid.UUID),
		bookings:    make(map[uuid.UUID]*model.Booking),
		quoteToBook: make(map[uuid.UUID]uuid.UUID),
		references:  make(map[string]struct{}),
	}
}

func (s *Store) Inventories() repository.InventoryRepository { return &inventoryRepo{s} }

func (s *Store) Fares() repository.FareRepository { return &fareRepo{s} }

func (s *Store) Bookings() repository.BookingRepository { return &bookingRepo{s} }

func (s *Store) entry(id uuid.UUID) (*fareEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.fares[id]
	if !ok {
		return nil, apperrors.NotFound("fare", id)
	}
	return e, nil
}

// appendMovement 需持有 e.mu
func (s *Store) appendMovement(e *fareEntry, kind model.MovementKind, deltaTotal, deltaAvailable int, bookingID *uuid.UUID) {
	m := model.NewMovement(&e.fare, kind, deltaTotal, deltaAvailable, bookingID)
	m.ID = s.movementSeq.Add(1)
	e.movements = append(e.movements, *m)
}

func copyFare(f *model.FareRecord) *model.FareRecord {
	c := *f
	return &c
}

func copyBooking(b *model.Booking) *model.Booking {
	c := *b
	c.Passengers = append([]model.Passenger(nil), b.Passengers...)
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}

// ---- inventories ----

type inventoryRepo struct{ s *Store }

func (r *inventoryRepo) Create(ctx context.Context, inventory *model.FlightInventory) (*model.FlightInventory, error) {
	r.s.mu.Lock()
	if _, exists := r.s.inventories[inventory.ID]; exists {
		r.s.mu.Unlock()
		return nil, apperrors.InvalidState(fmt.Sprintf("inventory %s already exists", inventory.ID))
	}
	stored := *inventory
	stored.Fares = nil
	stored.UpdatedAt = stored.CreatedAt
	r.s.inventories[stored.ID] = &stored
	r.s.mu.Unlock()

	return r.FindByID(ctx, inventory.ID)
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FlightInventory, error) {
	r.s.mu.RLock()
	inv, ok := r.s.inventories[id]
	if !ok {
		r.s.mu.RUnlock()
		return nil, apperrors.NotFound("inventory", id)
	}
	c := *inv
	entries := r.s.entriesOf(id)
	r.s.mu.RUnlock()

	fillAggregates(&c, entries)
	return &c, nil
}

// entriesOf 需持有 s.mu（讀鎖即可）
func (s *Store) entriesOf(inventoryID uuid.UUID) []*fareEntry {
	ids := s.faresByInv[inventoryID]
	entries := make([]*fareEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, s.fares[id])
	}
	return entries
}

// fillAggregates 不可持有 s.mu，以免與 fareEntry.mu 形成反向鎖序
func fillAggregates(inv *model.FlightInventory, entries []*fareEntry) {
	inv.TotalSeats, inv.AvailableSeats = 0, 0
	for _, e := range entries {
		e.mu.Lock()
		inv.TotalSeats += e.fare.TotalSeats
		inv.AvailableSeats += e.fare.AvailableSeats
		e.mu.Unlock()
	}
}

func (r *inventoryRepo) List(ctx context.Context) ([]*model.FlightInventory, error) {
	return r.filter(func(*model.FlightInventory) bool { return true }), nil
}

func (r *inventoryRepo) Search(ctx context.Context, fromAirport, toAirport string, from, to time.Time) ([]*model.FlightInventory, error) {
	matched := r.filter(func(inv *model.FlightInventory) bool {
		return inv.Enabled &&
			inv.FromAirport == fromAirport &&
			inv.ToAirport == toAirport &&
			!inv.DepartureAt.Before(from) &&
			inv.DepartureAt.Before(to)
	})

	result := make([]*model.FlightInventory, 0, len(matched))
	for _, inv := range matched {
		if inv.AvailableSeats > 0 {
			result = append(result, inv)
		}
	}
	return result, nil
}

func (r *inventoryRepo) filter(match func(*model.FlightInventory) bool) []*model.FlightInventory {
	type pending struct {
		inv     model.FlightInventory
		entries []*fareEntry
	}

	r.s.mu.RLock()
	matched := make([]pending, 0)
	for _, inv := range r.s.inventories {
		if match(inv) {
			matched = append(matched, pending{inv: *inv, entries: r.s.entriesOf(inv.ID)})
		}
	}
	r.s.mu.RUnlock()

	result := make([]*model.FlightInventory, 0, len(matched))
	for i := range matched {
		fillAggregates(&matched[i].inv, matched[i].entries)
		result = append(result, &matched[i].inv)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DepartureAt.Equal(result[j].DepartureAt) {
			return result[i].DepartureAt.Before(result[j].DepartureAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result
}

func (r *inventoryRepo) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool, at time.Time) (*model.FlightInventory, error) {
	r.s.mu.Lock()
	inv, ok := r.s.inventories[id]
	if !ok {
		r.s.mu.Unlock()
		return nil, apperrors.NotFound("inventory", id)
	}
	inv.Enabled = enabled
	inv.UpdatedAt = at
	r.s.mu.Unlock()

	return r.FindByID(ctx, id)
}

// ---- fares ----

type fareRepo struct{ s *Store }

func (r *fareRepo) Create(ctx context.Context, fare *model.FareRecord) (*model.FareRecord, error) {
	if !fare.SeatsValid() {
		return nil, apperrors.Validation("available seats must be within total seats", nil)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.inventories[fare.InventoryID]; !ok {
		return nil, apperrors.NotFound("inventory", fare.InventoryID)
	}
	if _, exists := r.s.fares[fare.ID]; exists {
		return nil, apperrors.InvalidState(fmt.Sprintf("fare %s already exists", fare.ID))
	}

	e := &fareEntry{fare: *fare}
	e.fare.UpdatedAt = e.fare.CreatedAt
	// 新 entry 尚未公開，直接寫入異動不需 e.mu
	r.s.appendMovement(e, model.MovementAdd, fare.TotalSeats, fare.AvailableSeats, nil)
	r.s.fares[fare.ID] = e
	r.s.faresByInv[fare.InventoryID] = append(r.s.faresByInv[fare.InventoryID], fare.ID)

	return copyFare(&e.fare), nil
}

func (r *fareRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FareRecord, error) {
	e, err := r.s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyFare(&e.fare), nil
}

func (r *fareRepo) ListByInventoryID(ctx context.Context, inventoryID uuid.UUID) ([]*model.FareRecord, error) {
	r.s.mu.RLock()
	entries := r.s.entriesOf(inventoryID)
	r.s.mu.RUnlock()

	fares := make([]*model.FareRecord, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		fares = append(fares, copyFare(&e.fare))
		e.mu.Unlock()
	}
	return fares, nil
}

func (r *fareRepo) AddSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error) {
	e, err := r.s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if seats > model.MaxTierSeats-e.fare.TotalSeats {
		return nil, repository.TierCapacityExceeded(e.fare.TotalSeats)
	}
	e.fare.TotalSeats += seats
	e.fare.AvailableSeats += seats
	e.fare.Version++
	e.fare.UpdatedAt = at
	r.s.appendMovement(e, model.MovementTopUp, seats, seats, nil)
	return copyFare(&e.fare), nil
}

func (r *fareRepo) MinusSeats(ctx context.Context, id uuid.UUID, seats int, at time.Time) (*model.FareRecord, error) {
	e, err := r.s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.fare.AvailableSeats < seats {
		return nil, apperrors.InsufficientSeats(seats, e.fare.AvailableSeats)
	}
	e.fare.AvailableSeats -= seats
	e.fare.Version++
	e.fare.UpdatedAt = at
	r.s.appendMovement(e, model.MovementMinus, 0, -seats, nil)
	return copyFare(&e.fare), nil
}

func (r *fareRepo) UpdateMarkup(ctx context.Context, fare *model.FareRecord, expectedVersion int64) (*model.FareRecord, error) {
	e, err := r.s.entry(fare.ID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.fare.Version != expectedVersion {
		return nil, apperrors.ConcurrencyConflict("fare", fare.ID)
	}
	e.fare.InfantFare = fare.InfantFare
	e.fare.Markup1 = fare.Markup1
	e.fare.Markup2 = fare.Markup2
	e.fare.GrossTotal = fare.GrossTotal
	e.fare.GrandTotal = fare.GrandTotal
	e.fare.Version++
	e.fare.UpdatedAt = fare.UpdatedAt
	return copyFare(&e.fare), nil
}

func (r *fareRepo) ListMovements(ctx context.Context, fareID uuid.UUID) ([]*model.SeatMovement, error) {
	e, err := r.s.entry(fareID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	movements := make([]*model.SeatMovement, 0, len(e.movements))
	for i := range e.movements {
		m := e.movements[i]
		movements = append(movements, &m)
	}
	return movements, nil
}

// ---- bookings ----

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Confirm(ctx context.Context, booking *model.Booking) (*model.Booking, *model.FareRecord, error) {
	seats := booking.SeatsHeld()
	if seats <= 0 {
		return nil, nil, apperrors.Validation("booking must hold at least one seat", nil)
	}

	e, err := r.s.entry(booking.FareID)
	if err != nil {
		return nil, nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv, ok := r.s.inventories[e.fare.InventoryID]
	switch {
	case !ok:
		return nil, nil, apperrors.NotFound("inventory", e.fare.InventoryID)
	case !inv.Enabled:
		return nil, nil, apperrors.InvalidState("flight inventory is disabled")
	case !e.fare.GrandTotal.Equal(booking.Pricing.GrandTotal) || !e.fare.InfantFare.Equal(booking.Pricing.InfantFare):
		return nil, nil, apperrors.InvalidState("fare changed since quote, request a new quote")
	case e.fare.AvailableSeats < seats:
		return nil, nil, apperrors.InsufficientSeats(seats, e.fare.AvailableSeats)
	}
	if _, dup := r.s.quoteToBook[booking.QuoteID]; dup {
		return nil, nil, apperrors.InvalidState(fmt.Sprintf("quote %s is already confirmed", booking.QuoteID))
	}
	if _, dup := r.s.references[booking.Reference]; dup {
		return nil, nil, repository.ErrDuplicateReference
	}

	e.fare.AvailableSeats -= seats
	e.fare.Version++
	e.fare.UpdatedAt = booking.CreatedAt

	stored := copyBooking(booking)
	stored.Status = model.BookingStatusConfirmed
	stored.UpdatedAt = stored.CreatedAt
	r.s.bookings[stored.ID] = stored
	r.s.quoteToBook[stored.QuoteID] = stored.ID
	r.s.references[stored.Reference] = struct{}{}
	r.s.appendMovement(e, model.MovementBook, 0, -seats, &stored.ID)

	return copyBooking(stored), copyFare(&e.fare), nil
}

func (r *bookingRepo) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*model.Booking, *model.FareRecord, error) {
	r.s.mu.RLock()
	b, ok := r.s.bookings[id]
	var fareID uuid.UUID
	if ok {
		fareID = b.FareID
	}
	r.s.mu.RUnlock()
	if !ok {
		return nil, nil, apperrors.NotFound("booking", id)
	}

	e, err := r.s.entry(fareID)
	if err != nil {
		return nil, nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !b.Status.CanTransitionTo(model.BookingStatusCancelled) {
		return nil, nil, apperrors.InvalidState(fmt.Sprintf("booking %s is %s and cannot be cancelled", id, b.Status))
	}
	seats := b.SeatsHeld()
	if e.fare.AvailableSeats+seats > e.fare.TotalSeats {
		return nil, nil, fmt.Errorf("restoring %d seats to fare %s exceeds total seats: %w", seats, fareID, apperrors.ErrInternal)
	}

	e.fare.AvailableSeats += seats
	e.fare.Version++
	e.fare.UpdatedAt = at

	cancelledAt := at
	b.Status = model.BookingStatusCancelled
	b.CancelReason = reason
	b.CancelledAt = &cancelledAt
	b.UpdatedAt = at
	r.s.appendMovement(e, model.MovementCancel, 0, seats, &b.ID)

	return copyBooking(b), copyFare(&e.fare), nil
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, apperrors.NotFound("booking", id)
	}
	return copyBooking(b), nil
}
