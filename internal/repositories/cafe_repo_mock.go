package repositories

import (
	"fmt"
	"sort"
	"sync"

	"gocafe/internal/models"
)

// MockCafeRepository is an in-memory implementation of CafeRepository.
type MockCafeRepository struct {
	cafes  map[uint]models.Cafe
	nextID uint
	mu     sync.RWMutex
}

// NewMockCafeRepository creates a new instance of MockCafeRepository.
func NewMockCafeRepository() *MockCafeRepository {
	return &MockCafeRepository{
		cafes:  make(map[uint]models.Cafe),
		nextID: 1,
	}
}

// GetAll returns all cafes ordered by name.
func (r *MockCafeRepository) GetAll() ([]models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafeList := make([]models.Cafe, 0, len(r.cafes))
	for _, c := range r.cafes {
		cafeList = append(cafeList, c)
	}
	sort.Slice(cafeList, func(i, j int) bool {
		return cafeList[i].Name < cafeList[j].Name
	})
	return cafeList, nil
}

// GetByID returns a cafe by its ID.
func (r *MockCafeRepository) GetByID(id uint) (*models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafe, ok := r.cafes[id]
	if !ok {
		return nil, fmt.Errorf("cafe %d: %w", id, ErrNotFound)
	}
	return &cafe, nil
}

// Create adds a new cafe, assigning an ID if not provided.
func (r *MockCafeRepository) Create(cafe *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cafe.ID == 0 {
		cafe.ID = r.nextID
	}
	if cafe.ID >= r.nextID {
		r.nextID = cafe.ID + 1
	}
	r.cafes[cafe.ID] = *cafe
	return nil
}

// Update modifies an existing cafe.
func (r *MockCafeRepository) Update(cafe *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cafes[cafe.ID]; !ok {
		return fmt.Errorf("cafe %d: %w", cafe.ID, ErrNotFound)
	}
	r.cafes[cafe.ID] = *cafe
	return nil
}
