package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

const messageHistoryLimit = 50

// Workspace renders the authenticated dashboard: profile, subscription and
// the user's events, performances, media and recent messages in one view.
func Workspace(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var profile models.Profile
	hasProfile := gormDB.Where("user_id = ?", user.ID).First(&profile).Error == nil

	var subscription models.Subscription
	hasSubscription := gormDB.Where("user_id = ?", user.ID).First(&subscription).Error == nil

	var events []models.Event
	if err := gormDB.Where("user_id = ?", user.ID).Order("event_date ASC").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	var performances []models.Performance
	if err := gormDB.Where("user_id = ?", user.ID).Order("performance_date DESC").Find(&performances).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving performances.")
		return
	}

	var media []models.MediaAsset
	if err := gormDB.Where("user_id = ?", user.ID).Order("uploaded_at DESC").Find(&media).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving media.")
		return
	}

	var messages []models.Message
	if err := gormDB.
		Where("sender_id = ? OR recipient_id = ?", user.ID, user.ID).
		Order("created_at DESC").
		Limit(messageHistoryLimit).
		Find(&messages).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving messages.")
		return
	}

	data := gin.H{
		"current_user":      user,
		"user_events":       events,
		"user_performances": performances,
		"user_media":        media,
		"chat_messages":     messages,
	}
	if hasProfile {
		data["profile"] = profile
	}
	if hasSubscription {
		data["subscription"] = subscription
	}

	c.HTML(http.StatusOK, "workspace.html", data)
}
