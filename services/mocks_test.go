package services

import (
	"io"
	"sort"
	"strings"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"
)

// ============================================
// In-memory repository mocks for the tests
// ============================================

type mockUserRepository struct {
	users map[string]*models.User

	// Wired by the fixtures so DeleteCascade behaves like the real repository.
	listings *mockListingRepository
	bookings *mockBookingRepository
	messages *mockMessageRepository
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*models.User)}
}

func (m *mockUserRepository) Create(user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepository) GetByUsername(username string) (*models.User, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) GetAll() ([]models.User, error) {
	names := make([]string, 0, len(m.users))
	for name := range m.users {
		names = append(names, name)
	}
	sort.Strings(names)

	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, *m.users[name])
	}
	return users, nil
}

func (m *mockUserRepository) Update(user *models.User) error {
	if _, exists := m.users[user.Username]; !exists {
		return repositories.ErrNotFound
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepository) DeleteCascade(username string) error {
	if _, exists := m.users[username]; !exists {
		return repositories.ErrNotFound
	}
	if m.bookings != nil {
		for id, b := range m.bookings.bookings {
			if b.Username == username {
				delete(m.bookings.bookings, id)
			}
		}
	}
	if m.messages != nil {
		for id, msg := range m.messages.messages {
			if msg.FromUsername == username {
				delete(m.messages.messages, id)
			}
		}
	}
	if m.listings != nil {
		for id, l := range m.listings.listings {
			if l.Username == username {
				m.listings.DeleteCascade(id)
			}
		}
	}
	delete(m.users, username)
	return nil
}

type mockListingRepository struct {
	listings map[uint]*models.Listing
	nextID   uint

	failUpdate error

	bookings *mockBookingRepository
	messages *mockMessageRepository
}

func newMockListingRepository() *mockListingRepository {
	return &mockListingRepository{listings: make(map[uint]*models.Listing), nextID: 1}
}

func (m *mockListingRepository) Create(listing *models.Listing) error {
	listing.ID = m.nextID
	m.nextID++
	m.listings[listing.ID] = listing
	return nil
}

func (m *mockListingRepository) GetByID(id uint) (*models.Listing, error) {
	listing, exists := m.listings[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return listing, nil
}

func (m *mockListingRepository) sortedIDs() []uint {
	ids := make([]uint, 0, len(m.listings))
	for id := range m.listings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mockListingRepository) Search(query string) ([]models.Listing, error) {
	var out []models.Listing
	for _, id := range m.sortedIDs() {
		listing := m.listings[id]
		if query == "" || containsFold(listing.Title, query) {
			out = append(out, *listing)
		}
	}
	return out, nil
}

func (m *mockListingRepository) ByHost(username string) ([]models.Listing, error) {
	var out []models.Listing
	for _, id := range m.sortedIDs() {
		if m.listings[id].Username == username {
			out = append(out, *m.listings[id])
		}
	}
	return out, nil
}

func (m *mockListingRepository) Update(listing *models.Listing) error {
	if m.failUpdate != nil {
		return m.failUpdate
	}
	if _, exists := m.listings[listing.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.listings[listing.ID] = listing
	return nil
}

func (m *mockListingRepository) DeleteCascade(id uint) error {
	if _, exists := m.listings[id]; !exists {
		return repositories.ErrNotFound
	}
	if m.bookings != nil {
		for bid, b := range m.bookings.bookings {
			if b.PropertyID == id {
				delete(m.bookings.bookings, bid)
			}
		}
	}
	if m.messages != nil {
		for mid, msg := range m.messages.messages {
			if msg.PropertyID == id {
				delete(m.messages.messages, mid)
			}
		}
	}
	delete(m.listings, id)
	return nil
}

type mockBookingRepository struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[uint]*models.Booking), nextID: 1}
}

func (m *mockBookingRepository) Create(booking *models.Booking) error {
	booking.ID = m.nextID
	m.nextID++
	m.bookings[booking.ID] = booking
	return nil
}

func (m *mockBookingRepository) GetByID(id uint) (*models.Booking, error) {
	booking, exists := m.bookings[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return booking, nil
}

func (m *mockBookingRepository) sortedIDs() []uint {
	ids := make([]uint, 0, len(m.bookings))
	for id := range m.bookings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mockBookingRepository) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range m.sortedIDs() {
		out = append(out, *m.bookings[id])
	}
	return out, nil
}

func (m *mockBookingRepository) ByGuest(username string) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range m.sortedIDs() {
		if m.bookings[id].Username == username {
			out = append(out, *m.bookings[id])
		}
	}
	return out, nil
}

func (m *mockBookingRepository) ByListing(propertyID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, id := range m.sortedIDs() {
		if m.bookings[id].PropertyID == propertyID {
			out = append(out, *m.bookings[id])
		}
	}
	return out, nil
}

func (m *mockBookingRepository) Delete(id uint) error {
	if _, exists := m.bookings[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

type mockMessageRepository struct {
	messages map[uint]*models.Message
	nextID   uint
}

func newMockMessageRepository() *mockMessageRepository {
	return &mockMessageRepository{messages: make(map[uint]*models.Message), nextID: 1}
}

func (m *mockMessageRepository) Create(message *models.Message) error {
	message.ID = m.nextID
	m.nextID++
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageRepository) GetByID(id uint) (*models.Message, error) {
	message, exists := m.messages[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return message, nil
}

func (m *mockMessageRepository) sortedIDs() []uint {
	ids := make([]uint, 0, len(m.messages))
	for id := range m.messages {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *mockMessageRepository) BySender(username string) ([]models.Message, error) {
	var out []models.Message
	for _, id := range m.sortedIDs() {
		if m.messages[id].FromUsername == username {
			out = append(out, *m.messages[id])
		}
	}
	return out, nil
}

func (m *mockMessageRepository) ByListing(propertyID uint) ([]models.Message, error) {
	var out []models.Message
	for _, id := range m.sortedIDs() {
		if m.messages[id].PropertyID == propertyID {
			out = append(out, *m.messages[id])
		}
	}
	return out, nil
}

type mockFileRepository struct {
	files []models.File
}

func (m *mockFileRepository) Create(file *models.File) error {
	m.files = append(m.files, *file)
	return nil
}

// ============================================
// Fakes for the file store and the geocoder
// ============================================

type fakeStore struct {
	stored  []string
	removed []string
	fail    error
}

func (f *fakeStore) Store(filename string, r io.Reader) (string, error) {
	if f.fail != nil {
		return "", f.fail
	}
	io.Copy(io.Discard, r)
	f.stored = append(f.stored, filename)
	return "https://img.test/" + filename, nil
}

func (f *fakeStore) Remove(filename string) error {
	f.removed = append(f.removed, filename)
	return nil
}

func (f *fakeStore) Origin() string { return "test-bucket" }
func (f *fakeStore) Region() string { return "test-region" }

type fakeGeocoder struct {
	lat, lng float64
	fail     error
	calls    int
}

func (f *fakeGeocoder) Resolve(address string) (float64, float64, error) {
	f.calls++
	if f.fail != nil {
		return 0, 0, f.fail
	}
	return f.lat, f.lng, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func newTestListingService(
	listings *mockListingRepository,
	users *mockUserRepository,
	store FileStore,
	geo Geocoder,
) *ListingService {
	bookings := newMockBookingRepository()
	messages := newMockMessageRepository()
	listings.bookings = bookings
	listings.messages = messages
	return NewListingService(
		listings,
		users,
		bookings,
		messages,
		&mockFileRepository{},
		store,
		geo,
	)
}
