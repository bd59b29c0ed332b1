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

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/signup", h.HandleSignupForm)
	router.Post("/signup", h.HandleSignup)
	router.Get("/login", h.HandleLoginForm)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
}

// HandleSignupForm renders the signup form. Starting a signup flow forces
// a logout of any current session.
func (h *AuthHandler) HandleSignupForm(c *fiber.Ctx) error {
	if err := middleware.Logout(h.store, c); err != nil {
		log.Printf("Error logging out before signup: %v", err)
	}
	return render(c, h.store, "auth/signup-form", fiber.Map{
		"Values": map[string]string{},
		"Errors": map[string][]string{},
	})
}

// HandleSignup creates the account and logs the new user in. A taken
// username re-shows the form with an error notice and writes nothing.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	if err := middleware.Logout(h.store, c); err != nil {
		log.Printf("Error logging out before signup: %v", err)
	}

	form := forms.SignupForm()
	values, violations := form.Validate(formData(c, form))
	if len(violations) > 0 {
		return render(c, h.store, "auth/signup-form", fiber.Map{
			"Values": values,
			"Errors": violations,
		})
	}

	user := &models.User{
		Username:    values["username"],
		FirstName:   values["first_name"],
		LastName:    values["last_name"],
		Description: values["description"],
		Email:       values["email"],
		ImageURL:    values["image_url"],
		// The original granted admin to every signup; that was a known
		// bug, so new accounts are regular users here.
		Admin: false,
	}
	if err := h.authService.Register(user, values["password"]); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			middleware.SetFlash(h.store, c, "danger", "Username already taken")
		} else {
			log.Printf("Error registering user: %v", err)
			middleware.SetFlash(h.store, c, "danger", "There was a problem signing up")
		}
		return render(c, h.store, "auth/signup-form", fiber.Map{
			"Values": values,
			"Errors": violations,
		})
	}

	if err := middleware.Login(h.store, c, user.ID); err != nil {
		log.Printf("Error logging in new user %d: %v", user.ID, err)
	}
	middleware.SetFlash(h.store, c, "success", "You are signed up and logged in.")
	return c.Redirect("/cafes")
}

// HandleLoginForm renders the login form.
func (h *AuthHandler) HandleLoginForm(c *fiber.Ctx) error {
	return render(c, h.store, "auth/login-form", fiber.Map{
		"Values": map[string]string{},
		"Errors": map[string][]string{},
	})
}

// HandleLogin authenticates the user. Wrong credentials get one generic
// notice with no hint of whether the account exists.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	form := forms.LoginForm()
	values, violations := form.Validate(formData(c, form))
	if len(violations) > 0 {
		return render(c, h.store, "auth/login-form", fiber.Map{
			"Values": values,
			"Errors": violations,
		})
	}

	user, err := h.authService.Authenticate(values["username"], values["password"])
	if err != nil {
		middleware.SetFlash(h.store, c, "danger", "Wrong username - password combination")
		return c.Redirect("/cafes")
	}

	if err := middleware.Login(h.store, c, user.ID); err != nil {
		log.Printf("Error logging in user %d: %v", user.ID, err)
	}
	middleware.SetFlash(h.store, c, "success", fmt.Sprintf("Hello, %s", user.Username))
	return c.Redirect("/cafes")
}

// HandleLogout clears the session. An anonymous logout gets an
// unauthorized notice instead.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if middleware.CurrentUser(c) == nil {
		middleware.SetFlash(h.store, c, "danger", "Access unauthorized.")
		return c.Redirect("/cafes")
	}

	if err := middleware.Logout(h.store, c); err != nil {
		log.Printf("Error logging out: %v", err)
	}
	middleware.SetFlash(h.store, c, "success", "You have successfully logged out.")
	return c.Redirect("/")
}
