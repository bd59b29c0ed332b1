package handlers

import (
	"errors"
	"log"

	"gocafe/internal/repositories"
	"gocafe/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LikeAPIHandler handles the JSON like endpoints. The user and cafe are
// identified by explicit ids supplied by the caller, per the original API
// contract. That lets any caller toggle any user's likes; the contract is
// kept as-is but is an authorization gap.
type LikeAPIHandler struct {
	likeService *services.LikeService
}

// NewLikeAPIHandler creates a new LikeAPIHandler.
func NewLikeAPIHandler(likeService *services.LikeService) *LikeAPIHandler {
	return &LikeAPIHandler{
		likeService: likeService,
	}
}

// RegisterRoutes registers the like API routes with the Fiber app.
func (h *LikeAPIHandler) RegisterRoutes(router fiber.Router) {
	apiRoutes := router.Group("/api")
	apiRoutes.Get("/likes", h.HandleLikes)
	apiRoutes.Post("/like", h.HandleLike)
	apiRoutes.Post("/unlike", h.HandleUnlike)
}

// likeRequest is the body of the like/unlike endpoints.
type likeRequest struct {
	CafeID uint `json:"cafeId"`
	UserID uint `json:"userId"`
}

// HandleLikes reports whether the given user likes the given cafe.
func (h *LikeAPIHandler) HandleLikes(c *fiber.Ctx) error {
	userID := c.QueryInt("userId")
	cafeID := c.QueryInt("cafeId")
	if userID < 1 || cafeID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId and cafeId query parameters are required",
		})
	}

	likes, err := h.likeService.Likes(uint(userID), uint(cafeID))
	if err != nil {
		return h.likeError(c, err)
	}
	return c.JSON(fiber.Map{
		"likes": likes,
	})
}

// HandleLike makes the given user like the given cafe.
func (h *LikeAPIHandler) HandleLike(c *fiber.Ctx) error {
	req, ok := h.parseBody(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cafeId and userId are required",
		})
	}

	if err := h.likeService.Like(req.UserID, req.CafeID); err != nil {
		return h.likeError(c, err)
	}
	return c.JSON(fiber.Map{
		"liked": req.CafeID,
	})
}

// HandleUnlike removes the given user's like of the given cafe.
func (h *LikeAPIHandler) HandleUnlike(c *fiber.Ctx) error {
	req, ok := h.parseBody(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cafeId and userId are required",
		})
	}

	if err := h.likeService.Unlike(req.UserID, req.CafeID); err != nil {
		return h.likeError(c, err)
	}
	return c.JSON(fiber.Map{
		"unliked": req.CafeID,
	})
}

func (h *LikeAPIHandler) parseBody(c *fiber.Ctx) (likeRequest, bool) {
	var req likeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing like request body: %v", err)
		return req, false
	}
	if req.UserID == 0 || req.CafeID == 0 {
		return req, false
	}
	return req, true
}

// likeError maps an unknown user or cafe to a 404 JSON response; anything
// else is a 500.
func (h *LikeAPIHandler) likeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	log.Printf("Error handling like request: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal error",
	})
}
