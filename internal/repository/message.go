package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/einvite/einvite-go/internal/model"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageStore is an in-memory guestboard store. Messages are append-only;
// there is no update or delete.
type MessageStore struct {
	mu       sync.RWMutex
	messages map[int64]model.Message
	nextID   int64
	now      func() time.Time
}

// NewMessageStore creates an empty MessageStore using the system clock for
// creation timestamps.
func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[int64]model.Message),
		nextID:   1,
		now:      time.Now,
	}
}

// Create assigns the next id and the creation timestamp, stores the message,
// and returns it.
func (s *MessageStore) Create(ctx context.Context, insert model.InsertMessage) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := model.Message{
		ID:        s.nextID,
		Name:      insert.Name,
		Email:     insert.Email,
		Content:   insert.Content,
		CreatedAt: s.now().UTC(),
	}
	s.nextID++

	s.messages[message.ID] = message
	return message, nil
}

// GetByID retrieves a message by id.
func (s *MessageStore) GetByID(ctx context.Context, id int64) (model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	message, ok := s.messages[id]
	if !ok {
		return model.Message{}, ErrMessageNotFound
	}
	return message, nil
}

// GetAll returns every stored message newest-first. Ids are issued in
// creation order, so descending id is descending creation time.
func (s *MessageStore) GetAll(ctx context.Context) ([]model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]model.Message, 0, len(s.messages))
	for _, message := range s.messages {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID > messages[j].ID })
	return messages, nil
}
