package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/einvite/einvite-go/internal/model"
)

var ErrRsvpNotFound = errors.New("rsvp not found")

// RsvpStore is an in-memory RSVP store. A mutex serializes every access so
// concurrent handlers never race on the id counter or the email index. State
// is volatile: a new process starts empty.
type RsvpStore struct {
	mu      sync.RWMutex
	rsvps   map[int64]model.Rsvp
	byEmail map[string]int64 // normalized email -> id
	nextID  int64
}

// NewRsvpStore creates an empty RsvpStore.
func NewRsvpStore() *RsvpStore {
	return &RsvpStore{
		rsvps:   make(map[int64]model.Rsvp),
		byEmail: make(map[string]int64),
		nextID:  1,
	}
}

// Create assigns the next id, stores the record, and returns it.
func (s *RsvpStore) Create(ctx context.Context, insert model.InsertRsvp) (model.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rsvp := model.Rsvp{
		ID:                  s.nextID,
		Name:                insert.Name,
		Email:               insert.Email,
		Attending:           insert.Attending,
		GuestCount:          insert.GuestCount,
		DietaryRestrictions: insert.DietaryRestrictions,
		Message:             insert.Message,
	}
	s.nextID++

	s.rsvps[rsvp.ID] = rsvp
	s.byEmail[normalizeEmail(rsvp.Email)] = rsvp.ID
	return rsvp, nil
}

// GetByID retrieves an RSVP by id.
func (s *RsvpStore) GetByID(ctx context.Context, id int64) (model.Rsvp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rsvp, ok := s.rsvps[id]
	if !ok {
		return model.Rsvp{}, ErrRsvpNotFound
	}
	return rsvp, nil
}

// GetByEmail retrieves an RSVP by email, compared case-insensitively.
func (s *RsvpStore) GetByEmail(ctx context.Context, email string) (model.Rsvp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return model.Rsvp{}, ErrRsvpNotFound
	}
	return s.rsvps[id], nil
}

// GetAll returns every stored RSVP in id order.
func (s *RsvpStore) GetAll(ctx context.Context) ([]model.Rsvp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rsvps := make([]model.Rsvp, 0, len(s.rsvps))
	for _, rsvp := range s.rsvps {
		rsvps = append(rsvps, rsvp)
	}
	sort.Slice(rsvps, func(i, j int) bool { return rsvps[i].ID < rsvps[j].ID })
	return rsvps, nil
}

// Update replaces the fields of the record with the given id, keeping the id.
// The email index is rewritten under the new normalized email; the stale
// entry is removed when the email changed.
func (s *RsvpStore) Update(ctx context.Context, id int64, insert model.InsertRsvp) (model.Rsvp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rsvps[id]
	if !ok {
		return model.Rsvp{}, ErrRsvpNotFound
	}

	oldKey := normalizeEmail(existing.Email)
	newKey := normalizeEmail(insert.Email)
	if oldKey != newKey {
		delete(s.byEmail, oldKey)
	}

	rsvp := model.Rsvp{
		ID:                  id,
		Name:                insert.Name,
		Email:               insert.Email,
		Attending:           insert.Attending,
		GuestCount:          insert.GuestCount,
		DietaryRestrictions: insert.DietaryRestrictions,
		Message:             insert.Message,
	}
	s.rsvps[id] = rsvp
	s.byEmail[newKey] = id
	return rsvp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
