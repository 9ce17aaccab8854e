package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/einvite/einvite-go/internal/model"
	"github.com/einvite/einvite-go/internal/repository"
)

func newTestMessageService(t *testing.T, count int) *MessageService {
	t.Helper()
	svc := NewMessageService(repository.NewMessageStore())
	for i := 1; i <= count; i++ {
		_, err := svc.Submit(context.Background(), model.InsertMessage{
			Name:    "Guest",
			Email:   "guest@example.com",
			Content: fmt.Sprintf("M%d", i),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return svc
}

func TestMessageList_NewestFirst(t *testing.T) {
	svc := newTestMessageService(t, 3)

	resp, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"M3", "M2", "M1"}
	if len(resp.Messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(resp.Messages))
	}
	for i, message := range resp.Messages {
		if message.Content != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], message.Content)
		}
	}
}

func TestMessageList_Pagination(t *testing.T) {
	svc := newTestMessageService(t, 5)

	resp, err := svc.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Newest-first order is M5..M1; offset 2 limit 2 selects the 3rd and
	// 4th newest.
	want := []string{"M3", "M2"}
	if len(resp.Messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(resp.Messages))
	}
	for i, message := range resp.Messages {
		if message.Content != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], message.Content)
		}
	}
	if resp.Total != 5 {
		t.Errorf("expected total 5, got %d", resp.Total)
	}
}

func TestMessageList_OffsetPastEnd(t *testing.T) {
	svc := newTestMessageService(t, 2)

	resp, err := svc.List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Messages) != 0 {
		t.Errorf("expected empty page, got %d messages", len(resp.Messages))
	}
	if resp.Total != 2 {
		t.Errorf("expected total 2, got %d", resp.Total)
	}
}

func TestMessageList_Empty(t *testing.T) {
	svc := NewMessageService(repository.NewMessageStore())

	resp, err := svc.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Messages == nil {
		t.Error("expected non-nil empty slice")
	}
	if resp.Total != 0 {
		t.Errorf("expected total 0, got %d", resp.Total)
	}
}

func TestMessageSubmit_ReturnsStoredRecord(t *testing.T) {
	svc := NewMessageService(repository.NewMessageStore())

	message, err := svc.Submit(context.Background(), model.InsertMessage{
		Name:    "Alice",
		Email:   "alice@example.com",
		Content: "Congratulations!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if message.ID != 1 {
		t.Errorf("expected id 1, got %d", message.ID)
	}
	if message.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}
