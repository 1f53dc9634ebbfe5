package services

import (
	"errors"
	"time"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"
)

type BookingInput struct {
	Username             string
	PropertyID           uint
	CheckInDate          time.Time
	CheckOutDate         time.Time
	BookingPricePerNight int
}

type BookingService struct {
	bookings repositories.BookingRepository
	users    repositories.UserRepository
	listings repositories.ListingRepository
}

func NewBookingService(
	bookings repositories.BookingRepository,
	users repositories.UserRepository,
	listings repositories.ListingRepository,
) *BookingService {
	return &BookingService{bookings: bookings, users: users, listings: listings}
}

// Create persists a booking after verifying both the guest and the listing
// exist. Date ranges are stored as given; overlapping stays are allowed.
func (s *BookingService) Create(in BookingInput) (*models.Booking, error) {
	if _, err := s.users.GetByUsername(in.Username); err != nil {
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

	booking := &models.Booking{
		Username:             in.Username,
		PropertyID:           in.PropertyID,
		CheckInDate:          in.CheckInDate,
		CheckOutDate:         in.CheckOutDate,
		BookingPricePerNight: in.BookingPricePerNight,
	}
	if err := s.bookings.Create(booking); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Get(id uint) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) GetAll() ([]models.Booking, error) {
	bookings, err := s.bookings.GetAll()
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// Delete removes a booking; only the guest who owns it may do so.
func (s *BookingService) Delete(id uint, requester string) error {
	booking, err := s.Get(id)
	if err != nil {
		return err
	}
	if booking.Username != requester {
		return ErrForbidden
	}
	if err := s.bookings.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
