package repositories

import (
	"github.com/stzheng716/sharebnb-backend/models"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id uint) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	ByGuest(username string) ([]models.Booking, error)
	ByListing(propertyID uint) ([]models.Booking, error)
	Delete(id uint) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *bookingRepository) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (r *bookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ByGuest(username string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("username = ?", username).Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) ByListing(propertyID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("property_id = ?", propertyID).Order("id").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
