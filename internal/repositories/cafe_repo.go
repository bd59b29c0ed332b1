package repositories

import (
	"gocafe/internal/models"
)

// CafeRepository defines the interface for cafe data access.
type CafeRepository interface {
	GetAll() ([]models.Cafe, error) // ordered by name
	GetByID(id uint) (*models.Cafe, error)
	Create(cafe *models.Cafe) error
	Update(cafe *models.Cafe) error
	// Delete is deliberately absent: no handler removes cafes.
}
