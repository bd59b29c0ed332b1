package services

import (
	"log"

	"gocafe/internal/models"
	"gocafe/internal/repositories"
)

// MapFetcher retrieves a static map image for a location and stores it,
// returning the stored image's public path. An empty path with a nil error
// means the image service declined the request. MapPath reports the public
// path of a previously stored image, or "" when none exists.
type MapFetcher interface {
	FetchAndStore(id uint, address, city, state string) (string, error)
	MapPath(id uint) string
}

// CafeService handles business logic related to cafes and their cities.
type CafeService struct {
	cafeRepo   repositories.CafeRepository
	cityRepo   repositories.CityRepository
	mapFetcher MapFetcher
}

// NewCafeService creates a new CafeService. mapFetcher may be nil, in which
// case no map images are generated.
func NewCafeService(cafeRepo repositories.CafeRepository, cityRepo repositories.CityRepository, mapFetcher MapFetcher) *CafeService {
	return &CafeService{
		cafeRepo:   cafeRepo,
		cityRepo:   cityRepo,
		mapFetcher: mapFetcher,
	}
}

// ListCafes retrieves all cafes ordered by name.
func (s *CafeService) ListCafes() ([]models.Cafe, error) {
	return s.cafeRepo.GetAll()
}

// GetCafe retrieves a single cafe by its ID.
func (s *CafeService) GetCafe(id uint) (*models.Cafe, error) {
	return s.cafeRepo.GetByID(id)
}

// Cities retrieves all cities, for populating the city select field.
func (s *CafeService) Cities() ([]models.City, error) {
	return s.cityRepo.GetAll()
}

// CreateCafe saves a new cafe and fetches its static map. A failed map
// fetch is logged and the cafe is kept without a map; the create itself
// never fails on the image service.
func (s *CafeService) CreateCafe(cafe *models.Cafe) error {
	if cafe.ImageURL == "" {
		cafe.ImageURL = models.DefaultCafeImageURL
	}
	if err := s.cafeRepo.Create(cafe); err != nil {
		return err
	}
	s.fetchMap(cafe)
	return nil
}

// UpdateCafe saves changes to an existing cafe and refreshes its static
// map, overwriting the previous image.
func (s *CafeService) UpdateCafe(cafe *models.Cafe) error {
	if cafe.ImageURL == "" {
		cafe.ImageURL = models.DefaultCafeImageURL
	}
	if err := s.cafeRepo.Update(cafe); err != nil {
		return err
	}
	s.fetchMap(cafe)
	return nil
}

// MapPath returns the public path of the cafe's map image, or "" if no
// image has been stored for it.
func (s *CafeService) MapPath(cafe *models.Cafe) string {
	if s.mapFetcher == nil {
		return ""
	}
	return s.mapFetcher.MapPath(cafe.ID)
}

func (s *CafeService) fetchMap(cafe *models.Cafe) {
	if s.mapFetcher == nil {
		return
	}
	path, err := s.mapFetcher.FetchAndStore(cafe.ID, cafe.Address, cafe.City.Name, cafe.City.State)
	if err != nil {
		log.Printf("Error fetching map for cafe %d: %v", cafe.ID, err)
		return
	}
	if path == "" {
		log.Printf("Map service returned no image for cafe %d", cafe.ID)
	}
}
