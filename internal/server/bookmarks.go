package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"smj-server/internal/catalog"
)

// BookmarkHandler serves the bookmark operations.
type BookmarkHandler struct {
	svc *catalog.Service
}

// NewBookmarkHandler creates a bookmark handler over the catalog.
func NewBookmarkHandler(svc *catalog.Service) *BookmarkHandler {
	return &BookmarkHandler{svc: svc}
}

// GetAll returns every bookmark.
func (h *BookmarkHandler) GetAll(c *fiber.Ctx) error {
	marks, err := h.svc.Bookmarks.All()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(marks)
}

// Add bookmarks a (mediaType, filename) pair.
func (h *BookmarkHandler) Add(c *fiber.Ctx) error {
	var req struct {
		MediaType string `json:"mediaType"`
		Filename  string `json:"filename"`
	}
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid request body")
	}

	err := h.svc.Bookmarks.Add(req.MediaType, req.Filename)
	switch {
	case errors.Is(err, catalog.ErrMissingFields):
		return sendError(c, http.StatusBadRequest, "Missing mediaType or filename")
	case errors.Is(err, catalog.ErrAlreadyBookmarked):
		return sendError(c, http.StatusBadRequest, "Already bookmarked")
	case err != nil:
		return storeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true})
}

// Remove deletes a bookmark.
func (h *BookmarkHandler) Remove(c *fiber.Ctx) error {
	if err := h.svc.Bookmarks.Remove(param(c, "mediaType"), param(c, "filename")); err != nil {
		return storeError(c, err)
	}
	return ack(c)
}
