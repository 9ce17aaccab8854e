package service

import (
	"context"

	"github.com/einvite/einvite-go/internal/model"
)

// MessageRepository is the storage contract MessageService depends on.
type MessageRepository interface {
	Create(ctx context.Context, insert model.InsertMessage) (model.Message, error)
	GetByID(ctx context.Context, id int64) (model.Message, error)
	GetAll(ctx context.Context) ([]model.Message, error)
}

// MessageService handles guestboard business logic.
type MessageService struct {
	repo MessageRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Submit stores a new guestboard message.
func (s *MessageService) Submit(ctx context.Context, insert model.InsertMessage) (model.Message, error) {
	return s.repo.Create(ctx, insert)
}

// List returns a newest-first page of messages plus the total stored count.
// A limit of 0 means no limit. Offsets past the end yield an empty page with
// the true total.
func (s *MessageService) List(ctx context.Context, limit, offset int) (model.MessageListResponse, error) {
	messages, err := s.repo.GetAll(ctx)
	if err != nil {
		return model.MessageListResponse{}, err
	}

	total := len(messages)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	page := messages[offset:]
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}
	if page == nil {
		page = []model.Message{}
	}

	return model.MessageListResponse{Messages: page, Total: total}, nil
}
