package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/einvite/einvite-go/internal/model"
)

func TestUserStore_CreateAssignsMonotonicIDs(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	first, err := store.Create(ctx, model.InsertUser{Username: "admin", Password: "hash-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Create(ctx, model.InsertUser{Username: "planner", Password: "hash-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestUserStore_GetByUsernameCaseSensitive(t *testing.T) {
	store := NewUserStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, model.InsertUser{Username: "Admin", Password: "hash"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.GetByUsername(ctx, "admin"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected case-sensitive miss, got %v", err)
	}

	user, err := store.GetByUsername(ctx, "Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "Admin" {
		t.Errorf("expected username Admin, got %q", user.Username)
	}
}

func TestUserStore_GetByIDMissing(t *testing.T) {
	store := NewUserStore()

	_, err := store.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
