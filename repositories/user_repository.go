package repositories

import (
	"github.com/stzheng716/sharebnb-backend/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	// DeleteCascade removes the user together with their bookings, sent
	// messages and owned listings (each listing cascading in turn) in one
	// transaction.
	DeleteCascade(username string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) DeleteCascade(username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return translate(err)
		}

		if err := tx.Where("username = ?", username).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("from_username = ?", username).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		var listingIDs []uint
		if err := tx.Model(&models.Listing{}).Where("username = ?", username).
			Pluck("id", &listingIDs).Error; err != nil {
			return err
		}
		if len(listingIDs) > 0 {
			if err := tx.Where("property_id IN ?", listingIDs).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id IN ?", listingIDs).Delete(&models.Message{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listingIDs).Delete(&models.Listing{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
