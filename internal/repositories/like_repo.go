package repositories

import "gocafe/internal/models"

// LikeRepository defines the interface for like join-table access.
// Liked cafes and likers are exposed as explicit join queries instead of
// model back-references.
type LikeRepository interface {
	Exists(userID, cafeID uint) (bool, error)
	Create(userID, cafeID uint) error
	Delete(userID, cafeID uint) error
	LikedCafes(userID uint) ([]models.Cafe, error)
	Likers(cafeID uint) ([]models.User, error)
}
