package services_test

import (
	"testing"

	"gocafe/internal/models"
	"gocafe/internal/repositories"
	"gocafe/internal/services"

	"github.com/stretchr/testify/assert"
)

func newLikeFixture(t *testing.T) (*services.LikeService, *models.User, *models.Cafe) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	cafeRepo := repositories.NewMockCafeRepository()
	likeRepo := repositories.NewMockLikeRepository(cafeRepo, userRepo)
	svc := services.NewLikeService(likeRepo, userRepo, cafeRepo)

	user := &models.User{Username: "test", FirstName: "Testy", LastName: "MacTest"}
	assert.NoError(t, userRepo.Create(user))
	cafe := &models.Cafe{Name: "Bernie's Cafe", Address: "3966 24th St", CityCode: "sf"}
	assert.NoError(t, cafeRepo.Create(cafe))

	return svc, user, cafe
}

func TestLikeService_LikeUnlikeRoundTrip(t *testing.T) {
	svc, user, cafe := newLikeFixture(t)

	likes, err := svc.Likes(user.ID, cafe.ID)
	assert.NoError(t, err)
	assert.False(t, likes)

	assert.NoError(t, svc.Like(user.ID, cafe.ID))

	likes, err = svc.Likes(user.ID, cafe.ID)
	assert.NoError(t, err)
	assert.True(t, likes)

	assert.NoError(t, svc.Unlike(user.ID, cafe.ID))

	// The join table is back to its original state.
	likes, err = svc.Likes(user.ID, cafe.ID)
	assert.NoError(t, err)
	assert.False(t, likes)
}

func TestLikeService_LikeIsIdempotent(t *testing.T) {
	svc, user, cafe := newLikeFixture(t)

	assert.NoError(t, svc.Like(user.ID, cafe.ID))
	assert.NoError(t, svc.Like(user.ID, cafe.ID))

	ids, err := svc.LikedCafeIDs(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{cafe.ID}, ids)
}

func TestLikeService_UnknownIDs(t *testing.T) {
	svc, user, cafe := newLikeFixture(t)

	err := svc.Like(999999, cafe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = svc.Like(user.ID, 999999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = svc.Unlike(999999, cafe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = svc.Likes(999999, cafe.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestLikeService_Accessors(t *testing.T) {
	svc, user, cafe := newLikeFixture(t)

	assert.NoError(t, svc.Like(user.ID, cafe.ID))

	likedCafes, err := svc.LikedCafes(user.ID)
	assert.NoError(t, err)
	assert.Len(t, likedCafes, 1)
	assert.Equal(t, cafe.ID, likedCafes[0].ID)

	likers, err := svc.Likers(cafe.ID)
	assert.NoError(t, err)
	assert.Len(t, likers, 1)
	assert.Equal(t, user.ID, likers[0].ID)
}
