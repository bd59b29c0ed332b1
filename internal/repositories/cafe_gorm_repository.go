package repositories

import (
	"errors"
	"fmt"

	"gocafe/internal/models"

	"gorm.io/gorm"
)

// GORMCafeRepository is a GORM implementation of CafeRepository.
type GORMCafeRepository struct {
	db *gorm.DB
}

// NewGORMCafeRepository creates a new instance of GORMCafeRepository.
func NewGORMCafeRepository(db *gorm.DB) *GORMCafeRepository {
	return &GORMCafeRepository{
		db: db,
	}
}

// GetAll retrieves all cafes ordered by name, with their city preloaded.
func (r *GORMCafeRepository) GetAll() ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := r.db.Preload("City").Order("name").Find(&cafes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cafes: %w", err)
	}
	return cafes, nil
}

// GetByID retrieves a single cafe by its ID, with its city preloaded.
func (r *GORMCafeRepository) GetByID(id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := r.db.Preload("City").First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cafe %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cafe by ID %d: %w", id, err)
	}
	return &cafe, nil
}

// Create creates a new cafe in the database and reloads its city association.
func (r *GORMCafeRepository) Create(cafe *models.Cafe) error {
	if err := r.db.Omit("City").Create(cafe).Error; err != nil {
		return fmt.Errorf("failed to create cafe: %w", err)
	}
	if err := r.db.First(&cafe.City, "code = ?", cafe.CityCode).Error; err != nil {
		return fmt.Errorf("failed to load city %s for cafe: %w", cafe.CityCode, err)
	}
	return nil
}

// Update updates an existing cafe in the database.
func (r *GORMCafeRepository) Update(cafe *models.Cafe) error {
	res := r.db.Omit("City").Save(cafe) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update cafe: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows match,
		// so we check RowsAffected.
		return fmt.Errorf("cafe %d: %w", cafe.ID, ErrNotFound)
	}
	if err := r.db.First(&cafe.City, "code = ?", cafe.CityCode).Error; err != nil {
		return fmt.Errorf("failed to load city %s for cafe: %w", cafe.CityCode, err)
	}
	return nil
}
