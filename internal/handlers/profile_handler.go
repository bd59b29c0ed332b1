package handlers

import (
	"log"

	"gocafe/internal/forms"
	"gocafe/internal/middleware"
	"gocafe/internal/models"
	"gocafe/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ProfileHandler handles the current user's profile pages.
type ProfileHandler struct {
	authService *services.AuthService
	likeService *services.LikeService
	store       *session.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(authService *services.AuthService, likeService *services.LikeService, store *session.Store) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
		likeService: likeService,
		store:       store,
	}
}

// RegisterRoutes registers the profile routes with the Fiber app.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", h.HandleProfile)
	router.Get("/profile/edit", h.HandleEditForm)
	router.Post("/profile/edit", h.HandleEdit)
}

// HandleProfile renders the current user's profile, with their liked
// cafes. Anonymous visitors are redirected to the login page.
func (h *ProfileHandler) HandleProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.SetFlash(h.store, c, "danger", notLoggedInMsg)
		return c.Redirect("/login")
	}

	likedCafes, err := h.likeService.LikedCafes(user.ID)
	if err != nil {
		log.Printf("Error getting liked cafes for user %d: %v", user.ID, err)
	}

	return render(c, h.store, "profile/detail", fiber.Map{
		"LikedCafes": likedCafes,
	})
}

// HandleEditForm renders the profile edit form pre-filled with the current
// user's fields.
func (h *ProfileHandler) HandleEditForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.SetFlash(h.store, c, "danger", "Access unauthorized.")
		return c.Redirect("/profile")
	}

	return render(c, h.store, "profile/edit-form", fiber.Map{
		"Values": profileValues(user),
		"Errors": map[string][]string{},
	})
}

// HandleEdit validates and saves the profile changes, then redirects back
// to the profile page.
func (h *ProfileHandler) HandleEdit(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.SetFlash(h.store, c, "danger", "Access unauthorized.")
		return c.Redirect("/profile")
	}

	form := forms.ProfileEditForm()
	values, violations := form.Validate(formData(c, form))
	if len(violations) > 0 {
		return render(c, h.store, "profile/edit-form", fiber.Map{
			"Values": values,
			"Errors": violations,
		})
	}

	user.FirstName = values["first_name"]
	user.LastName = values["last_name"]
	user.Description = values["description"]
	user.Email = values["email"]
	user.ImageURL = values["image_url"]

	if err := h.authService.UpdateProfile(user); err != nil {
		log.Printf("Error updating profile for user %d: %v", user.ID, err)
		middleware.SetFlash(h.store, c, "danger", "There was a problem editing the user")
		return render(c, h.store, "profile/edit-form", fiber.Map{
			"Values": values,
			"Errors": violations,
		})
	}

	middleware.SetFlash(h.store, c, "success", "Profile edited")
	return c.Redirect("/profile")
}

// profileValues pre-fills the form value bag from the user's profile.
func profileValues(user *models.User) map[string]string {
	return map[string]string{
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"description": user.Description,
		"email":       user.Email,
		"image_url":   user.ImageURL,
	}
}
