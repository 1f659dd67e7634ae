package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"smj-server/internal/catalog"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	svc *catalog.Service
}

// NewAuthHandler creates an auth handler over the catalog.
func NewAuthHandler(svc *catalog.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register creates an account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid request body")
	}

	err := h.svc.Users.Create(req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, catalog.ErrDuplicateUser):
		return sendError(c, http.StatusBadRequest, "User exists")
	case errors.Is(err, catalog.ErrMissingFields):
		return sendError(c, http.StatusBadRequest, "Missing username, email or password")
	case err != nil:
		return storeError(c, err)
	}
	return ack(c)
}

// Login checks an exact (username, password) match.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.svc.Users.Authenticate(req.Username, req.Password)
	switch {
	case errors.Is(err, catalog.ErrInvalidCredentials):
		return sendError(c, http.StatusUnauthorized, "Invalid")
	case err != nil:
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "username": user.Username})
}
