package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"smj-server/internal/assets"
	"smj-server/internal/catalog"
)

// MediaHandler serves the per-category asset operations.
type MediaHandler struct {
	svc *catalog.Service
}

// NewMediaHandler creates a media handler over the catalog.
func NewMediaHandler(svc *catalog.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

// List returns the category's asset names.
func (h *MediaHandler) List(c *fiber.Ctx) error {
	names, err := h.svc.ListMedia(param(c, "mediaType"))
	switch {
	case errors.Is(err, assets.ErrBadCategory):
		return sendError(c, http.StatusBadRequest, "Bad type")
	case err != nil:
		return storeError(c, err)
	}
	return c.JSON(names)
}

// Upload stores the multipart "file" field under its sanitized name.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return sendError(c, http.StatusBadRequest, "Missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return storeError(c, err)
	}
	defer f.Close()

	stored, err := h.svc.UploadMedia(param(c, "mediaType"), fh.Filename, f)
	switch {
	case errors.Is(err, assets.ErrBadCategory):
		return sendError(c, http.StatusBadRequest, "Bad type")
	case errors.Is(err, assets.ErrBadFilename):
		return sendError(c, http.StatusBadRequest, "Invalid filename")
	case err != nil:
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "filename": stored})
}

// Fetch streams the asset's bytes.
func (h *MediaHandler) Fetch(c *fiber.Ctx) error {
	filename := param(c, "filename")
	f, err := h.svc.FetchMedia(param(c, "mediaType"), filename)
	if err != nil {
		return fetchError(c, err)
	}
	setContentType(c, filename)
	return c.SendStream(f)
}

// Thumbnail streams the asset's derived thumbnail.
func (h *MediaHandler) Thumbnail(c *fiber.Ctx) error {
	f, err := h.svc.FetchThumbnail(param(c, "mediaType"), param(c, "filename"))
	if err != nil {
		return fetchError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.SendStream(f)
}

// Delete removes the asset and, for music, its thumbnail and index entry.
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	err := h.svc.DeleteMedia(param(c, "mediaType"), param(c, "filename"))
	switch {
	case errors.Is(err, assets.ErrBadCategory):
		return sendError(c, http.StatusBadRequest, "Bad media type")
	case errors.Is(err, assets.ErrBadFilename):
		return sendError(c, http.StatusBadRequest, "Invalid filename")
	case err != nil:
		return sendError(c, http.StatusInternalServerError, "Could not remove file")
	}
	return ack(c)
}

func fetchError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assets.ErrBadCategory), errors.Is(err, assets.ErrBadFilename):
		return sendError(c, http.StatusBadRequest, "Bad type")
	default:
		return storeError(c, err)
	}
}

func setContentType(c *fiber.Ctx, filename string) {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		c.Type(ext)
	}
}
