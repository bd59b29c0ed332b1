package repositories

import (
	"fmt"
	"sort"
	"sync"

	"gocafe/internal/models"
)

// MockCityRepository is an in-memory implementation of CityRepository.
type MockCityRepository struct {
	cities map[string]models.City
	mu     sync.RWMutex
}

// NewMockCityRepository creates a new instance of MockCityRepository.
func NewMockCityRepository() *MockCityRepository {
	return &MockCityRepository{
		cities: make(map[string]models.City),
	}
}

// GetAll returns all cities ordered by name.
func (r *MockCityRepository) GetAll() ([]models.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cityList := make([]models.City, 0, len(r.cities))
	for _, c := range r.cities {
		cityList = append(cityList, c)
	}
	sort.Slice(cityList, func(i, j int) bool {
		return cityList[i].Name < cityList[j].Name
	})
	return cityList, nil
}

// GetByCode returns a city by its code.
func (r *MockCityRepository) GetByCode(code string) (*models.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	city, ok := r.cities[code]
	if !ok {
		return nil, fmt.Errorf("city %s: %w", code, ErrNotFound)
	}
	return &city, nil
}

// Create adds a new city, rejecting duplicate codes.
func (r *MockCityRepository) Create(city *models.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cities[city.Code]; ok {
		return fmt.Errorf("city %s: %w", city.Code, ErrConflict)
	}
	r.cities[city.Code] = *city
	return nil
}
