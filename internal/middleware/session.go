package middleware

import (
	"log"

	"gocafe/internal/models"
	"gocafe/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	currUserKey = "curr_user"
	flashMsgKey = "flash_message"
	flashCatKey = "flash_category"
	localsUser  = "user"
)

// Flash is a one-shot user notice carried across a redirect.
type Flash struct {
	Message  string
	Category string // success, info, danger
}

// NewStore creates the server-side session store.
func NewStore() *session.Store {
	return session.New(session.Config{
		KeyLookup: "cookie:session_id",
	})
}

// LoadUser resolves the session's current user once per request, before
// any handler runs, and places it in the request's locals. Handlers read
// it via CurrentUser; no handler touches the session to find out who is
// logged in.
func LoadUser(store *session.Store, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			log.Printf("Error loading session: %v", err)
			return c.Next()
		}
		if id, ok := sess.Get(currUserKey).(uint); ok {
			if user, err := users.GetByID(id); err == nil {
				c.Locals(localsUser, user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil when
// the session is anonymous.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(localsUser).(*models.User)
	return user
}

// Login transitions the session to authenticated(userID).
func Login(store *session.Store, c *fiber.Ctx, userID uint) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(currUserKey, userID)
	return sess.Save()
}

// Logout transitions the session back to anonymous. Logging out an
// anonymous session is a no-op.
func Logout(store *session.Store, c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Delete(currUserKey)
	c.Locals(localsUser, nil)
	return sess.Save()
}

// SetFlash stores a one-shot notice for the next rendered page.
func SetFlash(store *session.Store, c *fiber.Ctx, category, message string) {
	sess, err := store.Get(c)
	if err != nil {
		log.Printf("Error setting flash: %v", err)
		return
	}
	sess.Set(flashMsgKey, message)
	sess.Set(flashCatKey, category)
	if err := sess.Save(); err != nil {
		log.Printf("Error saving flash: %v", err)
	}
}

// PopFlash returns and clears the pending notice, or nil when there is
// none.
func PopFlash(store *session.Store, c *fiber.Ctx) *Flash {
	sess, err := store.Get(c)
	if err != nil {
		return nil
	}
	msg, ok := sess.Get(flashMsgKey).(string)
	if !ok {
		return nil
	}
	cat, _ := sess.Get(flashCatKey).(string)
	sess.Delete(flashMsgKey)
	sess.Delete(flashCatKey)
	if err := sess.Save(); err != nil {
		log.Printf("Error clearing flash: %v", err)
	}
	return &Flash{Message: msg, Category: cat}
}
