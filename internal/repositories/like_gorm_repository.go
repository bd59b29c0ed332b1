package repositories

import (
	"errors"
	"fmt"

	"gocafe/internal/models"

	"gorm.io/gorm"
)

// GORMLikeRepository is a GORM implementation of LikeRepository.
type GORMLikeRepository struct {
	db *gorm.DB
}

// NewGORMLikeRepository creates a new instance of GORMLikeRepository.
func NewGORMLikeRepository(db *gorm.DB) *GORMLikeRepository {
	return &GORMLikeRepository{
		db: db,
	}
}

// Exists reports whether the (user, cafe) like row is present.
func (r *GORMLikeRepository) Exists(userID, cafeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like (%d, %d): %w", userID, cafeID, err)
	}
	return count > 0, nil
}

// Create inserts the like row. A duplicate pair races on the composite
// primary key and comes back as ErrConflict.
func (r *GORMLikeRepository) Create(userID, cafeID uint) error {
	like := models.Like{UserID: userID, CafeID: cafeID}
	if err := r.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("like (%d, %d): %w", userID, cafeID, ErrConflict)
		}
		return fmt.Errorf("failed to create like (%d, %d): %w", userID, cafeID, err)
	}
	return nil
}

// Delete removes the like row. Deleting an absent row is not an error; the
// table simply returns to the state the caller asked for.
func (r *GORMLikeRepository) Delete(userID, cafeID uint) error {
	res := r.db.Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Delete(&models.Like{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete like (%d, %d): %w", userID, cafeID, res.Error)
	}
	return nil
}

// LikedCafes returns the cafes liked by a user, joined through the like table.
func (r *GORMLikeRepository) LikedCafes(userID uint) ([]models.Cafe, error) {
	var cafes []models.Cafe
	err := r.db.Joins("JOIN likes ON likes.cafe_id = cafes.id").
		Where("likes.user_id = ?", userID).
		Preload("City").
		Find(&cafes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get liked cafes for user %d: %w", userID, err)
	}
	return cafes, nil
}

// Likers returns the users who like a cafe, joined through the like table.
func (r *GORMLikeRepository) Likers(cafeID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Joins("JOIN likes ON likes.user_id = users.id").
		Where("likes.cafe_id = ?", cafeID).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get likers for cafe %d: %w", cafeID, err)
	}
	return users, nil
}
