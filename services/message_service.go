package services

import (
	"errors"
	"time"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"
)

type MessageInput struct {
	FromUsername string
	PropertyID   uint
	Body         string
	SentAtDate   time.Time // zero value means "now"
}

type MessageService struct {
	messages repositories.MessageRepository
	users    repositories.UserRepository
	listings repositories.ListingRepository
}

func NewMessageService(
	messages repositories.MessageRepository,
	users repositories.UserRepository,
	listings repositories.ListingRepository,
) *MessageService {
	return &MessageService{messages: messages, users: users, listings: listings}
}

// Create persists a message tied to a listing. The sender and the listing
// must both exist; sent_at_date defaults to the current time.
func (s *MessageService) Create(in MessageInput) (*models.Message, error) {
	if _, err := s.users.GetByUsername(in.FromUsername); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.listings.GetByID(in.PropertyID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sentAt := in.SentAtDate
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	message := &models.Message{
		FromUsername: in.FromUsername,
		PropertyID:   in.PropertyID,
		Body:         in.Body,
		SentAtDate:   sentAt,
	}
	if err := s.messages.Create(message); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return message, nil
}

func (s *MessageService) Get(id uint) (*models.Message, error) {
	message, err := s.messages.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return message, nil
}
