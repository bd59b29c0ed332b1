package repositories

import (
	"fmt"
	"sync"

	"gocafe/internal/models"
)

type likeKey struct {
	userID uint
	cafeID uint
}

// MockLikeRepository is an in-memory implementation of LikeRepository.
// It resolves liked cafes and likers through the repositories it is given,
// mirroring the join queries of the GORM implementation.
type MockLikeRepository struct {
	likes map[likeKey]struct{}
	cafes CafeRepository
	users UserRepository
	mu    sync.RWMutex
}

// NewMockLikeRepository creates a new instance of MockLikeRepository.
func NewMockLikeRepository(cafes CafeRepository, users UserRepository) *MockLikeRepository {
	return &MockLikeRepository{
		likes: make(map[likeKey]struct{}),
		cafes: cafes,
		users: users,
	}
}

// Exists reports whether the (user, cafe) like is present.
func (r *MockLikeRepository) Exists(userID, cafeID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.likes[likeKey{userID, cafeID}]
	return ok, nil
}

// Create adds the like, rejecting duplicates like the composite primary key
// would.
func (r *MockLikeRepository) Create(userID, cafeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := likeKey{userID, cafeID}
	if _, ok := r.likes[key]; ok {
		return fmt.Errorf("like (%d, %d): %w", userID, cafeID, ErrConflict)
	}
	r.likes[key] = struct{}{}
	return nil
}

// Delete removes the like if present.
func (r *MockLikeRepository) Delete(userID, cafeID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.likes, likeKey{userID, cafeID})
	return nil
}

// LikedCafes returns the cafes liked by a user.
func (r *MockLikeRepository) LikedCafes(userID uint) ([]models.Cafe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cafes := []models.Cafe{}
	for key := range r.likes {
		if key.userID != userID {
			continue
		}
		cafe, err := r.cafes.GetByID(key.cafeID)
		if err != nil {
			return nil, err
		}
		cafes = append(cafes, *cafe)
	}
	return cafes, nil
}

// Likers returns the users who like a cafe.
func (r *MockLikeRepository) Likers(cafeID uint) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for key := range r.likes {
		if key.cafeID != cafeID {
			continue
		}
		user, err := r.users.GetByID(key.userID)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}
