package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"smj-server/internal/catalog"
)

// ListHandler serves the named-list operations.
type ListHandler struct {
	svc *catalog.Service
}

// NewListHandler creates a list handler over the catalog.
func NewListHandler(svc *catalog.Service) *ListHandler {
	return &ListHandler{svc: svc}
}

// GetAll returns the sorted list names.
func (h *ListHandler) GetAll(c *fiber.Ctx) error {
	names, err := h.svc.Lists.Names()
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(names)
}

// Create makes a new, empty list.
func (h *ListHandler) Create(c *fiber.Ctx) error {
	var req struct {
		List string `json:"list"`
	}
	if err := c.BodyParser(&req); err != nil {
		return sendError(c, http.StatusBadRequest, "Invalid request body")
	}

	err := h.svc.Lists.Create(req.List)
	switch {
	case errors.Is(err, catalog.ErrMissingFields):
		return sendError(c, http.StatusBadRequest, "Missing list name")
	case errors.Is(err, catalog.ErrListExists):
		return sendError(c, http.StatusBadRequest, "List exists")
	case err != nil:
		return storeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true})
}

// Delete removes a whole list.
func (h *ListHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Lists.Delete(param(c, "list")); err != nil {
		return storeError(c, err)
	}
	return ack(c)
}

// Items returns a list's item names in insertion order.
func (h *ListHandler) Items(c *fiber.Ctx) error {
	items, err := h.svc.Lists.Items(param(c, "list"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(items)
}

// AddItem adds a filename to a list; duplicates are a silent no-op.
func (h *ListHandler) AddItem(c *fiber.Ctx) error {
	err := h.svc.Lists.AddItem(param(c, "list"), param(c, "filename"))
	switch {
	case errors.Is(err, catalog.ErrMissingFields):
		return sendError(c, http.StatusBadRequest, "Missing list name or filename")
	case err != nil:
		return storeError(c, err)
	}
	return ack(c)
}

// RemoveItem deletes a filename from a list.
func (h *ListHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.svc.Lists.RemoveItem(param(c, "list"), param(c, "filename")); err != nil {
		return storeError(c, err)
	}
	return ack(c)
}
