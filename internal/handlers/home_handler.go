package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// HomeHandler serves the homepage.
type HomeHandler struct {
	store *session.Store
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(store *session.Store) *HomeHandler {
	return &HomeHandler{
		store: store,
	}
}

// RegisterRoutes registers the homepage route with the Fiber app.
func (h *HomeHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHomepage)
}

// HandleHomepage renders the homepage.
func (h *HomeHandler) HandleHomepage(c *fiber.Ctx) error {
	return render(c, h.store, "homepage", nil)
}
