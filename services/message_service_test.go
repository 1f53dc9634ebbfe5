package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stzheng716/sharebnb-backend/models"
)

func messageFixture(t *testing.T) (*MessageService, *models.Listing) {
	t.Helper()

	users := newMockUserRepository()
	hostUser(t, users, "hana")
	hostUser(t, users, "gwen")

	listings := newMockListingRepository()
	listing := &models.Listing{Title: "Cozy Cabin", Username: "hana"}
	if err := listings.Create(listing); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	return NewMessageService(newMockMessageRepository(), users, listings), listing
}

func TestCreateMessage_Success(t *testing.T) {
	service, listing := messageFixture(t)

	sentAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	message, err := service.Create(MessageInput{
		FromUsername: "gwen",
		PropertyID:   listing.ID,
		Body:         "Is the cabin free next weekend?",
		SentAtDate:   sentAt,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !message.SentAtDate.Equal(sentAt) {
		t.Errorf("Expected sent_at_date %v, got %v", sentAt, message.SentAtDate)
	}
}

func TestCreateMessage_DefaultsSentAt(t *testing.T) {
	service, listing := messageFixture(t)

	before := time.Now().UTC()
	message, err := service.Create(MessageInput{
		FromUsername: "gwen",
		PropertyID:   listing.ID,
		Body:         "Hello!",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if message.SentAtDate.Before(before) || message.SentAtDate.After(time.Now().UTC()) {
		t.Errorf("Expected sent_at_date to default to now, got %v", message.SentAtDate)
	}
}

func TestCreateMessage_UnknownSender(t *testing.T) {
	service, listing := messageFixture(t)

	_, err := service.Create(MessageInput{
		FromUsername: "ghost",
		PropertyID:   listing.ID,
		Body:         "boo",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCreateMessage_UnknownListing(t *testing.T) {
	service, _ := messageFixture(t)

	_, err := service.Create(MessageInput{
		FromUsername: "gwen",
		PropertyID:   999,
		Body:         "hello?",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetMessage_NotFound(t *testing.T) {
	service, _ := messageFixture(t)

	if _, err := service.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
