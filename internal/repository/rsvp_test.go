package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/einvite/einvite-go/internal/model"
)

func intPtr(n int) *int { return &n }

func TestRsvpStore_CreateAssignsMonotonicIDs(t *testing.T) {
	store := NewRsvpStore()
	ctx := context.Background()

	first, err := store.Create(ctx, model.InsertRsvp{Name: "Alice", Email: "alice@example.com", Attending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Create(ctx, model.InsertRsvp{Name: "Bob", Email: "bob@example.com", Attending: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 {
		t.Errorf("expected first id 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Errorf("expected second id 2, got %d", second.ID)
	}
}

func TestRsvpStore_GetByEmailCaseInsensitive(t *testing.T) {
	store := NewRsvpStore()
	ctx := context.Background()

	created, err := store.Create(ctx, model.InsertRsvp{Name: "Alice", Email: "Alice@Example.com", Attending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, email := range []string{"alice@example.com", "ALICE@EXAMPLE.COM", "Alice@Example.com"} {
		got, err := store.GetByEmail(ctx, email)
		if err != nil {
			t.Fatalf("GetByEmail(%q): unexpected error: %v", email, err)
		}
		if got.ID != created.ID {
			t.Errorf("GetByEmail(%q): expected id %d, got %d", email, created.ID, got.ID)
		}
	}
}

func TestRsvpStore_GetByEmailMissing(t *testing.T) {
	store := NewRsvpStore()

	_, err := store.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrRsvpNotFound) {
		t.Errorf("expected ErrRsvpNotFound, got %v", err)
	}
}

func TestRsvpStore_UpdatePreservesID(t *testing.T) {
	store := NewRsvpStore()
	ctx := context.Background()

	created, err := store.Create(ctx, model.InsertRsvp{Name: "Alice", Email: "alice@example.com", Attending: true, GuestCount: intPtr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := store.Update(ctx, created.ID, model.InsertRsvp{Name: "Alice Smith", Email: "alice@example.com", Attending: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("expected id %d preserved, got %d", created.ID, updated.ID)
	}
	if updated.Name != "Alice Smith" {
		t.Errorf("expected name replaced, got %q", updated.Name)
	}
	if updated.Attending {
		t.Error("expected attending replaced with false")
	}
	if updated.GuestCount != nil {
		t.Errorf("expected guest count cleared, got %v", *updated.GuestCount)
	}
}

func TestRsvpStore_UpdateReindexesEmail(t *testing.T) {
	store := NewRsvpStore()
	ctx := context.Background()

	created, err := store.Create(ctx, model.InsertRsvp{Name: "Alice", Email: "old@example.com", Attending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Update(ctx, created.ID, model.InsertRsvp{Name: "Alice", Email: "New@Example.com", Attending: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.GetByEmail(ctx, "old@example.com"); !errors.Is(err, ErrRsvpNotFound) {
		t.Errorf("expected stale email entry removed, got %v", err)
	}

	got, err := store.GetByEmail(ctx, "new@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected id %d under new email, got %d", created.ID, got.ID)
	}
}

func TestRsvpStore_UpdateMissingID(t *testing.T) {
	store := NewRsvpStore()

	_, err := store.Update(context.Background(), 42, model.InsertRsvp{Name: "Nobody", Email: "nobody@example.com"})
	if !errors.Is(err, ErrRsvpNotFound) {
		t.Errorf("expected ErrRsvpNotFound, got %v", err)
	}
}

func TestRsvpStore_GetAllReturnsEveryRecord(t *testing.T) {
	store := NewRsvpStore()
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := store.Create(ctx, model.InsertRsvp{Name: "Guest", Email: email, Attending: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	rsvps, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsvps) != 3 {
		t.Fatalf("expected 3 rsvps, got %d", len(rsvps))
	}
	for i, rsvp := range rsvps {
		if rsvp.ID != int64(i+1) {
			t.Errorf("expected id order 1,2,3; position %d holds id %d", i, rsvp.ID)
		}
	}
}
