package handlers

import (
	"gocafe/internal/forms"
	"gocafe/internal/middleware"
	"gocafe/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// notLoggedInMsg is flashed when a protected page is hit anonymously.
const notLoggedInMsg = "You are not logged in."

// render draws a template with the current user and any pending flash
// notice merged into the bind.
func render(c *fiber.Ctx, store *session.Store, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["User"] = middleware.CurrentUser(c)
	if flash := middleware.PopFlash(store, c); flash != nil {
		bind["Flash"] = flash
	}
	return c.Render(name, bind)
}

// renderNotFound draws the 404 page.
func renderNotFound(c *fiber.Ctx, store *session.Store) error {
	c.Status(fiber.StatusNotFound)
	return render(c, store, "404", nil)
}

// NotFound is the fallback handler for unmatched paths.
func NotFound(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderNotFound(c, store)
	}
}

// formData collects the submitted value of every field the form declares.
func formData(c *fiber.Ctx, form *forms.Form) map[string]string {
	data := make(map[string]string)
	for _, field := range form.Fields {
		data[field.Name] = c.FormValue(field.Name)
	}
	return data
}

// cityChoices converts city records into select-field choices.
func cityChoices(cities []models.City) []forms.Choice {
	choices := make([]forms.Choice, 0, len(cities))
	for _, city := range cities {
		choices = append(choices, forms.Choice{Value: city.Code, Label: city.Name})
	}
	return choices
}
