package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/einvite/einvite-go/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore is an in-memory account store.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]model.User
	nextID int64
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[int64]model.User),
		nextID: 1,
	}
}

// Create assigns the next id, stores the user, and returns it.
func (s *UserStore) Create(ctx context.Context, insert model.InsertUser) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:       s.nextID,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.nextID++

	s.users[user.ID] = user
	return user, nil
}

// GetByID retrieves a user by id.
func (s *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetByUsername retrieves a user by exact, case-sensitive username match.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return model.User{}, ErrUserNotFound
}
