package repositories

import (
	"github.com/stzheng716/sharebnb-backend/models"

	"gorm.io/gorm"
)

type FileRepository interface {
	Create(file *models.File) error
}

type GeocodeCacheRepository interface {
	GetByAddress(address string) (*models.GeocodeCache, error)
	Create(entry *models.GeocodeCache) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *models.File) error {
	return r.db.Create(file).Error
}

type geocodeCacheRepository struct {
	db *gorm.DB
}

func NewGeocodeCacheRepository(db *gorm.DB) GeocodeCacheRepository {
	return &geocodeCacheRepository{db: db}
}

func (r *geocodeCacheRepository) GetByAddress(address string) (*models.GeocodeCache, error) {
	var entry models.GeocodeCache
	if err := r.db.Where("address = ?", address).First(&entry).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (r *geocodeCacheRepository) Create(entry *models.GeocodeCache) error {
	return r.db.Create(entry).Error
}
