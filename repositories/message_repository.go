package repositories

import (
	"github.com/stzheng716/sharebnb-backend/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(id uint) (*models.Message, error)
	BySender(username string) ([]models.Message, error)
	ByListing(propertyID uint) ([]models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, translate(err)
	}
	return &message, nil
}

func (r *messageRepository) BySender(username string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("from_username = ?", username).Order("id").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ByListing(propertyID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("property_id = ?", propertyID).Order("id").Find(&messages).Error
	return messages, err
}
