package server

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"smj-server/internal/assets"
	"smj-server/internal/recordfile"
)

// sendError writes the service's JSON error shape.
func sendError(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// ack writes the plain success shape.
func ack(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

// storeError maps storage-layer failures that handlers do not translate
// themselves: bad input values become 400, missing assets become 404,
// everything else (corrupted record files, disk errors) is a 500.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, recordfile.ErrUnsafeValue):
		return sendError(c, http.StatusBadRequest, "Invalid characters in value")
	case errors.Is(err, assets.ErrNotFound):
		return sendError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, recordfile.ErrCorrupted):
		return sendError(c, http.StatusInternalServerError, "Store corrupted")
	default:
		return sendError(c, http.StatusInternalServerError, "Server error")
	}
}

// param returns a decoded route parameter. Filenames with spaces arrive
// percent-encoded.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
