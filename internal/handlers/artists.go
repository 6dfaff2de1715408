package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"realartist-backend/internal/storage"
)

type ArtistsHandler struct {
	store  storage.Storage
	logger *zap.SugaredLogger
}

func NewArtistsHandler(store storage.Storage, logger *zap.SugaredLogger) *ArtistsHandler {
	return &ArtistsHandler{store: store, logger: logger}
}

// ListArtists godoc
// @Summary     List AI artists
// @Description Returns the active entries of the AI artist catalog
// @Tags        artists
// @Produce     json
// @Success     200 {array}  models.AiArtist
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai-artists [get]
func (h *ArtistsHandler) ListArtists(c *gin.Context) {
	artists, err := h.store.GetAiArtists(c.Request.Context())
	if err != nil {
		respondInternal(c, h.logger, err, "Failed to fetch AI artists")
		return
	}
	c.JSON(http.StatusOK, artists)
}

// GetArtist godoc
// @Summary     Get AI artist
// @Tags        artists
// @Produce     json
// @Param       id path int true "Artist ID"
// @Success     200 {object} models.AiArtist
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/ai-artists/{id} [get]
func (h *ArtistsHandler) GetArtist(c *gin.Context) {
	id, ok := pathID(c, "id", "artist")
	if !ok {
		return
	}

	artist, err := h.store.GetAiArtist(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, h.logger, err, "AI artist not found", "Failed to fetch AI artist")
		return
	}
	c.JSON(http.StatusOK, artist)
}
