package services

import (
	"errors"

	"gocafe/internal/models"
	"gocafe/internal/repositories"
)

// LikeService handles the like join between users and cafes. Callers pass
// explicit user and cafe ids; both are verified to exist, and an unknown
// id surfaces as repositories.ErrNotFound rather than a silent no-op.
type LikeService struct {
	likeRepo repositories.LikeRepository
	userRepo repositories.UserRepository
	cafeRepo repositories.CafeRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeRepo repositories.LikeRepository, userRepo repositories.UserRepository, cafeRepo repositories.CafeRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		userRepo: userRepo,
		cafeRepo: cafeRepo,
	}
}

// Likes reports whether the user likes the cafe.
func (s *LikeService) Likes(userID, cafeID uint) (bool, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return false, err
	}
	return s.likeRepo.Exists(userID, cafeID)
}

// Like records that the user likes the cafe. Liking a cafe the user
// already likes is not an error; the row simply stays in place.
func (s *LikeService) Like(userID, cafeID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}
	if _, err := s.cafeRepo.GetByID(cafeID); err != nil {
		return err
	}
	if err := s.likeRepo.Create(userID, cafeID); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil
		}
		return err
	}
	return nil
}

// Unlike removes the user's like of the cafe.
func (s *LikeService) Unlike(userID, cafeID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}
	if _, err := s.cafeRepo.GetByID(cafeID); err != nil {
		return err
	}
	return s.likeRepo.Delete(userID, cafeID)
}

// LikedCafes returns the cafes liked by a user.
func (s *LikeService) LikedCafes(userID uint) ([]models.Cafe, error) {
	return s.likeRepo.LikedCafes(userID)
}

// LikedCafeIDs returns the ids of the cafes liked by a user.
func (s *LikeService) LikedCafeIDs(userID uint) ([]uint, error) {
	cafes, err := s.likeRepo.LikedCafes(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(cafes))
	for _, cafe := range cafes {
		ids = append(ids, cafe.ID)
	}
	return ids, nil
}

// Likers returns the users who like a cafe.
func (s *LikeService) Likers(cafeID uint) ([]models.User, error) {
	return s.likeRepo.Likers(cafeID)
}
