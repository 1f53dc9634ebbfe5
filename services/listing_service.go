package services

import (
	"errors"
	"io"
	"log"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"
)

// Geocoder resolves a free-text address to coordinates. A failed lookup is
// recoverable: listings fall back to null coordinates instead of aborting.
type Geocoder interface {
	Resolve(address string) (lat, lng float64, err error)
}

// ImageUpload is an incoming image from a multipart request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

type ListingInput struct {
	Title         string
	Details       string
	Street        string
	City          string
	State         string
	Zip           int
	Country       string
	PricePerNight int
	Username      string
}

// ListingPatch mirrors UserPatch: nil fields stay untouched.
type ListingPatch struct {
	Title         *string
	Details       *string
	Street        *string
	City          *string
	State         *string
	Zip           *int
	Country       *string
	PricePerNight *int
}

type ListingService struct {
	listings repositories.ListingRepository
	users    repositories.UserRepository
	bookings repositories.BookingRepository
	messages repositories.MessageRepository
	files    repositories.FileRepository
	store    FileStore
	geo      Geocoder
}

func NewListingService(
	listings repositories.ListingRepository,
	users repositories.UserRepository,
	bookings repositories.BookingRepository,
	messages repositories.MessageRepository,
	files repositories.FileRepository,
	store FileStore,
	geo Geocoder,
) *ListingService {
	return &ListingService{
		listings: listings,
		users:    users,
		bookings: bookings,
		messages: messages,
		files:    files,
		store:    store,
		geo:      geo,
	}
}

// Create persists a new listing for the host. An image upload failure aborts
// the whole creation; a geocode failure leaves coordinates null. Either way
// no partially consistent row is written.
func (s *ListingService) Create(in ListingInput, image *ImageUpload) (*models.Listing, error) {
	if _, err := s.users.GetByUsername(in.Username); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	imageURL := models.DefaultImageURL
	newUpload := ""
	if image != nil {
		url, stored, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		imageURL = url
		newUpload = stored
	}

	listing := &models.Listing{
		Title:         in.Title,
		Details:       in.Details,
		Street:        in.Street,
		City:          in.City,
		State:         in.State,
		Zip:           in.Zip,
		Country:       in.Country,
		PricePerNight: in.PricePerNight,
		ImageURL:      imageURL,
		Username:      in.Username,
	}
	listing.Latitude, listing.Longitude = s.geocode(in.Street, in.City)

	if err := s.listings.Create(listing); err != nil {
		if newUpload != "" {
			s.discardImage(newUpload)
		}
		if repositories.IsForeignKeyViolation(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// Update applies the supplied fields. The image is replaced only when a new
// one arrives; coordinates are recomputed only when street or city changed.
func (s *ListingService) Update(id uint, patch ListingPatch, image *ImageUpload) (*models.Listing, error) {
	listing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	addressChanged := false
	if patch.Title != nil {
		listing.Title = *patch.Title
	}
	if patch.Details != nil {
		listing.Details = *patch.Details
	}
	if patch.Street != nil && *patch.Street != listing.Street {
		listing.Street = *patch.Street
		addressChanged = true
	}
	if patch.City != nil && *patch.City != listing.City {
		listing.City = *patch.City
		addressChanged = true
	}
	if patch.State != nil {
		listing.State = *patch.State
	}
	if patch.Zip != nil {
		listing.Zip = *patch.Zip
	}
	if patch.Country != nil {
		listing.Country = *patch.Country
	}
	if patch.PricePerNight != nil {
		listing.PricePerNight = *patch.PricePerNight
	}

	newUpload := ""
	if image != nil {
		url, stored, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		listing.ImageURL = url
		newUpload = stored
	}
	if addressChanged {
		listing.Latitude, listing.Longitude = s.geocode(listing.Street, listing.City)
	}

	if err := s.listings.Update(listing); err != nil {
		if newUpload != "" {
			s.discardImage(newUpload)
		}
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) Get(id uint) (*models.Listing, error) {
	listing, err := s.listings.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// Detail returns the listing plus every booking and message referencing it.
func (s *ListingService) Detail(id uint) (*models.Listing, []models.Booking, []models.Message, error) {
	listing, err := s.Get(id)
	if err != nil {
		return nil, nil, nil, err
	}
	bookings, err := s.bookings.ByListing(id)
	if err != nil {
		return nil, nil, nil, err
	}
	messages, err := s.messages.ByListing(id)
	if err != nil {
		return nil, nil, nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return listing, bookings, messages, nil
}

func (s *ListingService) Search(query string) ([]models.Listing, error) {
	listings, err := s.listings.Search(query)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

// Delete removes the listing and its dependent bookings and messages. Only
// the host may delete.
func (s *ListingService) Delete(id uint, requester string) error {
	listing, err := s.Get(id)
	if err != nil {
		return err
	}
	if listing.Username != requester {
		return ErrForbidden
	}
	if err := s.listings.DeleteCascade(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ListingService) storeImage(image *ImageUpload) (string, string, error) {
	stored, err := NewStoredFilename(image.Filename)
	if err != nil {
		return "", "", err
	}
	url, err := s.store.Store(stored, image.Reader)
	if err != nil {
		return "", "", errors.Join(ErrUpstream, err)
	}
	if err := s.files.Create(&models.File{
		OriginalFilename: image.Filename,
		Filename:         stored,
		Bucket:           s.store.Origin(),
		Region:           s.store.Region(),
	}); err != nil {
		log.Printf("warning: failed to record stored file %s: %v", stored, err)
	}
	return url, stored, nil
}

// discardImage removes an upload left behind by a failed listing write.
func (s *ListingService) discardImage(stored string) {
	if err := s.store.Remove(stored); err != nil {
		log.Printf("warning: failed to remove orphaned upload %s: %v", stored, err)
	}
}

func (s *ListingService) geocode(street, city string) (*float64, *float64) {
	lat, lng, err := s.geo.Resolve(street + " " + city)
	if err != nil {
		log.Printf("warning: geocode failed for %q %q: %v", street, city, err)
		return nil, nil
	}
	return &lat, &lng
}
