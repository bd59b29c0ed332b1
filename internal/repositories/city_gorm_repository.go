package repositories

import (
	"errors"
	"fmt"

	"gocafe/internal/models"

	"gorm.io/gorm"
)

// GORMCityRepository is a GORM implementation of CityRepository.
type GORMCityRepository struct {
	db *gorm.DB
}

// NewGORMCityRepository creates a new instance of GORMCityRepository.
func NewGORMCityRepository(db *gorm.DB) *GORMCityRepository {
	return &GORMCityRepository{
		db: db,
	}
}

// GetAll retrieves all cities from the database.
func (r *GORMCityRepository) GetAll() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Order("name").Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cities: %w", err)
	}
	return cities, nil
}

// GetByCode retrieves a city by its code from the database.
func (r *GORMCityRepository) GetByCode(code string) (*models.City, error) {
	var city models.City
	if err := r.db.First(&city, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("city %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get city by code %s: %w", code, err)
	}
	return &city, nil
}

// Create creates a new city in the database.
func (r *GORMCityRepository) Create(city *models.City) error {
	if err := r.db.Create(city).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("city %s: %w", city.Code, ErrConflict)
		}
		return fmt.Errorf("failed to create city: %w", err)
	}
	return nil
}
