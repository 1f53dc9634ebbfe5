package repositories

import (
	"strings"

	"github.com/stzheng716/sharebnb-backend/models"

	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(listing *models.Listing) error
	GetByID(id uint) (*models.Listing, error)
	// Search returns all listings, or those whose title contains the query
	// term case-insensitively. Results come back in insertion order.
	Search(query string) ([]models.Listing, error)
	ByHost(username string) ([]models.Listing, error)
	Update(listing *models.Listing) error
	// DeleteCascade removes the listing and every booking/message that
	// references it in one transaction.
	DeleteCascade(id uint) error
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *listingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		return nil, translate(err)
	}
	return &listing, nil
}

func (r *listingRepository) Search(query string) ([]models.Listing, error) {
	var listings []models.Listing
	q := r.db.Order("id")
	if query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	err := q.Find(&listings).Error
	return listings, err
}

func (r *listingRepository) ByHost(username string) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("username = ?", username).Order("id").Find(&listings).Error
	return listings, err
}

func (r *listingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

func (r *listingRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
}
