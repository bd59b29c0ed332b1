package handlers

import (
	"errors"
	"fmt"
	"log"

	"gocafe/internal/forms"
	"gocafe/internal/middleware"
	"gocafe/internal/models"
	"gocafe/internal/repositories"
	"gocafe/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CafeHandler handles HTTP requests for cafe pages.
type CafeHandler struct {
	cafeService *services.CafeService
	likeService *services.LikeService
	store       *session.Store
}

// NewCafeHandler creates a new CafeHandler.
func NewCafeHandler(cafeService *services.CafeService, likeService *services.LikeService, store *session.Store) *CafeHandler {
	return &CafeHandler{
		cafeService: cafeService,
		likeService: likeService,
		store:       store,
	}
}

// RegisterRoutes registers the cafe routes with the Fiber app.
func (h *CafeHandler) RegisterRoutes(router fiber.Router) {
	cafeRoutes := router.Group("/cafes")
	cafeRoutes.Get("/", h.HandleList)
	cafeRoutes.Get("/add", h.HandleAddForm)
	cafeRoutes.Post("/add", h.HandleAdd)
	cafeRoutes.Get("/:id", h.HandleDetail)
	cafeRoutes.Get("/:id/edit", h.HandleEditForm)
	cafeRoutes.Post("/:id/edit", h.HandleEdit)
}

// HandleList renders all cafes ordered by name.
func (h *CafeHandler) HandleList(c *fiber.Ctx) error {
	cafes, err := h.cafeService.ListCafes()
	if err != nil {
		log.Printf("Error listing cafes: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, h.store, "cafe/list", fiber.Map{
		"Cafes": cafes,
	})
}

// HandleDetail renders a cafe's detail page, including the current user's
// liked-cafe ids and the cafe's map image path if one has been stored.
func (h *CafeHandler) HandleDetail(c *fiber.Ctx) error {
	cafe, ok := h.loadCafe(c)
	if !ok {
		return renderNotFound(c, h.store)
	}

	likedIDs := []uint{}
	if user := middleware.CurrentUser(c); user != nil {
		ids, err := h.likeService.LikedCafeIDs(user.ID)
		if err != nil {
			log.Printf("Error getting liked cafes for user %d: %v", user.ID, err)
		} else {
			likedIDs = ids
		}
	}

	return render(c, h.store, "cafe/detail", fiber.Map{
		"Cafe":     cafe,
		"LikedIDs": likedIDs,
		"MapURL":   h.cafeService.MapPath(cafe),
	})
}

// HandleAddForm renders the empty add-cafe form.
func (h *CafeHandler) HandleAddForm(c *fiber.Ctx) error {
	cities, err := h.cafeService.Cities()
	if err != nil {
		log.Printf("Error getting cities: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, h.store, "cafe/add-form", fiber.Map{
		"Cities": cities,
		"Values": map[string]string{},
		"Errors": map[string][]string{},
	})
}

// HandleAdd validates the submitted cafe and creates it, then redirects to
// the new cafe's detail page.
func (h *CafeHandler) HandleAdd(c *fiber.Ctx) error {
	form := forms.CafeForm()
	cities, err := h.cafeService.Cities()
	if err != nil {
		log.Printf("Error getting cities: %v", err)
		return fiber.ErrInternalServerError
	}
	form.SetChoices("city_code", cityChoices(cities))

	values, violations := form.Validate(formData(c, form))
	if len(violations) > 0 {
		return render(c, h.store, "cafe/add-form", fiber.Map{
			"Cities": cities,
			"Values": values,
			"Errors": violations,
		})
	}

	cafe := &models.Cafe{
		Name:        values["name"],
		Description: values["description"],
		URL:         values["url"],
		Address:     values["address"],
		CityCode:    values["city_code"],
		ImageURL:    values["image_url"],
	}
	if err := h.cafeService.CreateCafe(cafe); err != nil {
		log.Printf("Error creating cafe: %v", err)
		middleware.SetFlash(h.store, c, "danger", "There was a problem adding the cafe")
		return render(c, h.store, "cafe/add-form", fiber.Map{
			"Cities": cities,
			"Values": values,
			"Errors": violations,
		})
	}

	middleware.SetFlash(h.store, c, "success", fmt.Sprintf("%s added", cafe.Name))
	return c.Redirect(fmt.Sprintf("/cafes/%d", cafe.ID))
}

// HandleEditForm renders the edit form pre-filled with the cafe's fields.
func (h *CafeHandler) HandleEditForm(c *fiber.Ctx) error {
	cafe, ok := h.loadCafe(c)
	if !ok {
		return renderNotFound(c, h.store)
	}
	cities, err := h.cafeService.Cities()
	if err != nil {
		log.Printf("Error getting cities: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, h.store, "cafe/edit-form", fiber.Map{
		"Cafe":   cafe,
		"Cities": cities,
		"Values": cafeValues(cafe),
		"Errors": map[string][]string{},
	})
}

// HandleEdit validates the submitted changes and updates the cafe, then
// redirects to its detail page.
func (h *CafeHandler) HandleEdit(c *fiber.Ctx) error {
	cafe, ok := h.loadCafe(c)
	if !ok {
		return renderNotFound(c, h.store)
	}

	form := forms.CafeForm()
	cities, err := h.cafeService.Cities()
	if err != nil {
		log.Printf("Error getting cities: %v", err)
		return fiber.ErrInternalServerError
	}
	form.SetChoices("city_code", cityChoices(cities))

	values, violations := form.Validate(formData(c, form))
	if len(violations) > 0 {
		return render(c, h.store, "cafe/edit-form", fiber.Map{
			"Cafe":   cafe,
			"Cities": cities,
			"Values": values,
			"Errors": violations,
		})
	}

	cafe.Name = values["name"]
	cafe.Description = values["description"]
	cafe.URL = values["url"]
	cafe.Address = values["address"]
	cafe.CityCode = values["city_code"]
	cafe.ImageURL = values["image_url"]

	if err := h.cafeService.UpdateCafe(cafe); err != nil {
		log.Printf("Error updating cafe %d: %v", cafe.ID, err)
		middleware.SetFlash(h.store, c, "danger", "There was a problem editing the cafe")
		return render(c, h.store, "cafe/edit-form", fiber.Map{
			"Cafe":   cafe,
			"Cities": cities,
			"Values": values,
			"Errors": violations,
		})
	}

	middleware.SetFlash(h.store, c, "info", fmt.Sprintf("%s edited", cafe.Name))
	return c.Redirect(fmt.Sprintf("/cafes/%d", cafe.ID))
}

// loadCafe parses the id route parameter and loads the cafe. ok is false
// when the id is malformed or unknown.
func (h *CafeHandler) loadCafe(c *fiber.Ctx) (*models.Cafe, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, false
	}
	cafe, err := h.cafeService.GetCafe(uint(id))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error getting cafe %d: %v", id, err)
		}
		return nil, false
	}
	return cafe, true
}

// cafeValues pre-fills the form value bag from an existing cafe.
func cafeValues(cafe *models.Cafe) map[string]string {
	return map[string]string{
		"name":        cafe.Name,
		"description": cafe.Description,
		"url":         cafe.URL,
		"address":     cafe.Address,
		"city_code":   cafe.CityCode,
		"image_url":   cafe.ImageURL,
	}
}
