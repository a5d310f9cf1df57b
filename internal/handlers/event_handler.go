package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

type EventRequest struct {
	Title     helpers.FlexString `json:"title" form:"title"`
	EventDate helpers.FlexString `json:"event_date" form:"event_date"`
	Location  helpers.FlexString `json:"location" form:"location"`
}

func CreateEvent(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req EventRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	eventDate, err := helpers.ParseDate(req.EventDate.String())
	if err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid event date format")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event := models.Event{
		UserID:    user.ID,
		Title:     helpers.Truncate(req.Title.String(), 255),
		EventDate: eventDate,
		Location:  helpers.Truncate(req.Location.String(), 255),
	}
	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
