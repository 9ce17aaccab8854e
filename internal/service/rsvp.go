package service

import (
	"context"
	"errors"

	"github.com/einvite/einvite-go/internal/model"
	"github.com/einvite/einvite-go/internal/repository"
)

var ErrRsvpNotFound = errors.New("rsvp not found")

// GuestTotalPolicy names the formula behind the totalGuests statistic.
// Deployments have disagreed on whether the respondent counts toward the
// total, so the choice is explicit and configurable.
type GuestTotalPolicy string

const (
	// PolicyPartySize counts each attending respondent plus their extra
	// guests (an attending RSVP with guestCount 2 contributes 3).
	PolicyPartySize GuestTotalPolicy = "party-size"
	// PolicyExtraGuests counts only the declared extra guests (the same
	// RSVP contributes 2).
	PolicyExtraGuests GuestTotalPolicy = "extra-guests"
)

// ParseGuestTotalPolicy maps a config value to a policy, defaulting to
// PolicyPartySize for anything unrecognized.
func ParseGuestTotalPolicy(v string) GuestTotalPolicy {
	if v == string(PolicyExtraGuests) {
		return PolicyExtraGuests
	}
	return PolicyPartySize
}

// RsvpRepository is the storage contract RsvpService depends on. The
// in-memory store satisfies it; a persistent implementation can substitute
// without service changes, as long as it reports absence with
// repository.ErrRsvpNotFound.
type RsvpRepository interface {
	Create(ctx context.Context, insert model.InsertRsvp) (model.Rsvp, error)
	GetByID(ctx context.Context, id int64) (model.Rsvp, error)
	GetByEmail(ctx context.Context, email string) (model.Rsvp, error)
	GetAll(ctx context.Context) ([]model.Rsvp, error)
	Update(ctx context.Context, id int64, insert model.InsertRsvp) (model.Rsvp, error)
}

// RsvpService handles RSVP business logic.
type RsvpService struct {
	repo   RsvpRepository
	policy GuestTotalPolicy
}

// NewRsvpService creates a new RsvpService.
func NewRsvpService(repo RsvpRepository, policy GuestTotalPolicy) *RsvpService {
	return &RsvpService{repo: repo, policy: policy}
}

// SubmitResult reports the stored record and whether it was newly created.
type SubmitResult struct {
	Rsvp    model.Rsvp
	Created bool
}

// Submit stores an RSVP. When a record with the same email already exists
// (compared case-insensitively) its fields are replaced under the original
// id; otherwise a new record is created. At most one RSVP per normalized
// email exists at any time.
func (s *RsvpService) Submit(ctx context.Context, insert model.InsertRsvp) (SubmitResult, error) {
	existing, err := s.repo.GetByEmail(ctx, insert.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrRsvpNotFound) {
			return SubmitResult{}, err
		}

		rsvp, err := s.repo.Create(ctx, insert)
		if err != nil {
			return SubmitResult{}, err
		}
		return SubmitResult{Rsvp: rsvp, Created: true}, nil
	}

	rsvp, err := s.repo.Update(ctx, existing.ID, insert)
	if err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Rsvp: rsvp, Created: false}, nil
}

// ListWithStats returns every RSVP plus aggregate attendance statistics.
func (s *RsvpService) ListWithStats(ctx context.Context) (model.RsvpListResponse, error) {
	rsvps, err := s.repo.GetAll(ctx)
	if err != nil {
		return model.RsvpListResponse{}, err
	}

	stats := model.RsvpStats{Total: len(rsvps)}
	for _, rsvp := range rsvps {
		if !rsvp.Attending {
			continue
		}
		stats.Attending++

		extra := 0
		if rsvp.GuestCount != nil {
			extra = *rsvp.GuestCount
		}
		if s.policy == PolicyExtraGuests {
			stats.TotalGuests += extra
		} else {
			stats.TotalGuests += 1 + extra
		}
	}
	stats.NotAttending = stats.Total - stats.Attending

	if rsvps == nil {
		rsvps = []model.Rsvp{}
	}
	return model.RsvpListResponse{Rsvps: rsvps, Stats: stats}, nil
}

// FindByEmail returns the RSVP stored under the given email, compared
// case-insensitively.
func (s *RsvpService) FindByEmail(ctx context.Context, email string) (model.Rsvp, error) {
	rsvp, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrRsvpNotFound) {
			return model.Rsvp{}, ErrRsvpNotFound
		}
		return model.Rsvp{}, err
	}
	return rsvp, nil
}
