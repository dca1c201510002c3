package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/campusconnect-dev/campusconnect/internal/store"
)

// respondStoreError maps the store error taxonomy onto HTTP statuses.
// Backend failures are logged with their original message but surface to
// the caller as a generic failure.
func respondStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrAlreadyRegistered):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Already registered for this event"})
	case errors.Is(err, store.ErrCapacityExceeded):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Event is at capacity"})
	default:
		log.Error().Err(err).Msg("store operation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
