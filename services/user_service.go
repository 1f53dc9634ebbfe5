package services

import (
	"errors"
	"fmt"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"
	"github.com/stzheng716/sharebnb-backend/utils"
)

type SignupInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsHost    bool
}

// UserPatch carries a partial profile update. Nil means "leave unchanged",
// so an absent JSON key can never cause an accidental write.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsHost    *bool
}

type UserService struct {
	users    repositories.UserRepository
	listings repositories.ListingRepository
	bookings repositories.BookingRepository
	messages repositories.MessageRepository
}

func NewUserService(
	users repositories.UserRepository,
	listings repositories.ListingRepository,
	bookings repositories.BookingRepository,
	messages repositories.MessageRepository,
) *UserService {
	return &UserService{users: users, listings: listings, bookings: bookings, messages: messages}
}

// Signup checks username and email uniqueness, hashes the password and
// persists the user. A concurrent insert racing past the pre-checks is caught
// by the unique key and reported as the username conflict.
func (s *UserService) Signup(in SignupInput) (*models.User, error) {
	if _, err := s.users.GetByUsername(in.Username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByEmail(in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
		IsHost:    in.IsHost,
	}

	if err := s.users.Create(user); err != nil {
		if repositories.IsDuplicateEntry(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies username and password. Unknown user and wrong
// password fail identically so the response leaks nothing.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(username string) (*models.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	users, err := s.users.GetAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Detail returns the user together with their listings, bookings and sent
// messages for the expanded profile payload.
func (s *UserService) Detail(username string) (*models.User, []models.Listing, []models.Booking, []models.Message, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	listings, err := s.listings.ByHost(username)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	bookings, err := s.bookings.ByGuest(username)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	messages, err := s.messages.BySender(username)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return user, listings, bookings, messages, nil
}

// Update applies the supplied fields only. A changed email goes through the
// same uniqueness check as signup; a new password is re-hashed.
func (s *UserService) Update(username string, patch UserPatch) (*models.User, error) {
	user, err := s.Get(username)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if _, err := s.users.GetByEmail(*patch.Email); err == nil {
			return nil, ErrDuplicateEmail
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.IsHost != nil {
		user.IsHost = *patch.IsHost
	}
	if patch.Password != nil {
		hash, err := utils.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = hash
	}

	if err := s.users.Update(user); err != nil {
		if repositories.IsDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the user and everything they own. Only the user themself may
// do it.
func (s *UserService) Delete(username, requester string) error {
	if requester != username {
		return ErrForbidden
	}
	if err := s.users.DeleteCascade(username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
