package repositories

import "gocafe/internal/models"

// CityRepository defines the interface for city reference data access.
type CityRepository interface {
	GetAll() ([]models.City, error)
	GetByCode(code string) (*models.City, error)
	Create(city *models.City) error // used by the seeder only
}
