package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campusconnect-dev/campusconnect/db"
	"github.com/campusconnect-dev/campusconnect/internal/models"
)

type SaveEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Venue       string `json:"venue"`
	Organizer   string `json:"organizer"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Price       int    `json:"price" binding:"min=0"`
}

func (r *SaveEventRequest) toModel(id string) *models.Event {
	return &models.Event{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Venue:       r.Venue,
		Organizer:   r.Organizer,
		Category:    models.Category(r.Category),
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
		Price:       r.Price,
	}
}

func ListEvents(ctx *gin.Context) {
	events, err := db.Active.GetEvents(ctx.Request.Context())

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	if events == nil {
		events = []models.Event{}
	}

	ctx.JSON(http.StatusOK, events)
}

func GetEvent(ctx *gin.Context) {
	event, err := db.Active.GetEventByID(ctx.Request.Context(), ctx.Param("event_id"))

	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func CreateEvent(ctx *gin.Context) {
	var req SaveEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := req.toModel(uuid.NewString())

	if err := event.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Active.SaveEvent(ctx.Request.Context(), event); err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// UpdateEvent is an insert-or-replace by identifier, matching the store's
// upsert semantics.
func UpdateEvent(ctx *gin.Context) {
	var req SaveEventRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := req.toModel(ctx.Param("event_id"))

	if err := event.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := db.Active.SaveEvent(ctx.Request.Context(), event); err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent cascades: the store removes the event's registrations along
// with the event itself.
func DeleteEvent(ctx *gin.Context) {
	eventID := ctx.Param("event_id")

	if err := db.Active.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		respondStoreError(ctx, err)
		return
	}

	BroadcastOccupancy(eventID, 0)

	ctx.Status(http.StatusNoContent)
}
