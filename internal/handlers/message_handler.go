package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

type MessageRequest struct {
	Body        helpers.FlexString `json:"body" form:"body"`
	RecipientID helpers.FlexString `json:"recipient_id" form:"recipient_id"`
	ToModerator helpers.FlexString `json:"to_moderator" form:"to_moderator"`
}

func SendMessage(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req MessageRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	body := strings.TrimSpace(req.Body.String())
	if body == "" {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Message vide")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	message := models.Message{
		SenderID:      user.ID,
		RecipientID:   helpers.UintOrNil(req.RecipientID.String()),
		Body:          body,
		IsToModerator: helpers.IsTruthy(req.ToModerator.String()),
	}
	if err := gormDB.Create(&message).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to send message.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
