package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

type PerformanceRequest struct {
	Title           helpers.FlexString `json:"title" form:"title"`
	PerformanceDate helpers.FlexString `json:"performance_date" form:"performance_date"`
	Fee             helpers.FlexString `json:"fee" form:"fee"`
}

func CreatePerformance(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req PerformanceRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	performanceDate, err := helpers.ParseDate(req.PerformanceDate.String())
	if err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid performance date format")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	performance := models.Performance{
		UserID:          user.ID,
		Title:           helpers.Truncate(req.Title.String(), 255),
		PerformanceDate: performanceDate,
		// Absent or unparseable fees are recorded as 0, not rejected.
		Fee: helpers.FloatOrZero(req.Fee.String()),
	}
	if err := gormDB.Create(&performance).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create performance.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
