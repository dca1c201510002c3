package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/campusconnect-dev/campusconnect/internal/models"
	"github.com/campusconnect-dev/campusconnect/internal/registry"
	"github.com/campusconnect-dev/campusconnect/internal/utils"
)

// RegisterForEvent creates a registration for the current user. Payment
// confirmation happens upstream; by the time this endpoint is hit the
// caller has settled it.
func RegisterForEvent(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	eventID := ctx.Param("event_id")

	reg, err := registry.Default.Register(ctx.Request.Context(), userID, eventID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	notifyOccupancy(ctx, eventID)

	ctx.JSON(http.StatusCreated, reg)
}

// CancelRegistration removes the current user's registration for the
// event. Cancelling when not registered is a success that changed nothing.
func CancelRegistration(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	eventID := ctx.Param("event_id")

	removed, err := registry.Default.Cancel(ctx.Request.Context(), userID, eventID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	if removed {
		notifyOccupancy(ctx, eventID)
	}

	ctx.JSON(http.StatusOK, gin.H{"removed": removed})
}

// GetEventRegistrations reports live occupancy for an event and, when the
// request is authenticated, whether the current user holds a registration.
func GetEventRegistrations(ctx *gin.Context) {
	eventID := ctx.Param("event_id")

	occupancy, err := registry.Default.Occupancy(ctx.Request.Context(), eventID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	response := gin.H{"count": occupancy}

	if userID, err := utils.GetCurrentUserID(ctx); err == nil {
		registered, err := registry.Default.IsRegistered(ctx.Request.Context(), userID, eventID)
		if err != nil {
			respondStoreError(ctx, err)
			return
		}
		response["registered"] = registered
	}

	ctx.JSON(http.StatusOK, response)
}

func MyRegistrations(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	regs, err := registry.Default.RegistrationsForUser(ctx.Request.Context(), userID)

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	if regs == nil {
		regs = []models.Registration{}
	}

	ctx.JSON(http.StatusOK, regs)
}

// notifyOccupancy pushes the recounted occupancy to websocket watchers.
// Failures here never affect the HTTP response.
func notifyOccupancy(ctx *gin.Context, eventID string) {
	occupancy, err := registry.Default.Occupancy(ctx.Request.Context(), eventID)
	if err != nil {
		log.Warn().Err(err).Str("event_id", eventID).Msg("failed to recount occupancy for broadcast")
		return
	}
	BroadcastOccupancy(eventID, occupancy)
}
