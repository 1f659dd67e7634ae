package server

import (
	"github.com/gofiber/fiber/v2"

	"smj-server/internal/catalog"
	"smj-server/internal/index"
)

// SearchHandler serves the music metadata search.
type SearchHandler struct {
	svc *catalog.Service
}

// NewSearchHandler creates a search handler over the catalog.
func NewSearchHandler(svc *catalog.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Tracks runs the q= query against the metadata index. An empty query
// returns everything.
func (h *SearchHandler) Tracks(c *fiber.Ctx) error {
	tracks, err := h.svc.SearchTracks(c.Query("q"))
	if err != nil {
		return storeError(c, err)
	}
	if tracks == nil {
		tracks = []index.Track{}
	}
	return c.JSON(tracks)
}
