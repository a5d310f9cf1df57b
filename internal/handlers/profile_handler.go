package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

type ProfileRequest struct {
	Bio      helpers.FlexString `json:"bio" form:"bio"`
	Phone    helpers.FlexString `json:"phone" form:"phone"`
	Location helpers.FlexString `json:"location" form:"location"`
	Website  helpers.FlexString `json:"website" form:"website"`
}

// UpsertProfile replaces all profile fields for the current user, creating
// the row on first save.
func UpsertProfile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	profile := models.Profile{
		UserID:   user.ID,
		Bio:      req.Bio.String(),
		Phone:    req.Phone.String(),
		Location: req.Location.String(),
		Website:  req.Website.String(),
	}

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		var existing models.Profile
		if tx.Where("user_id = ?", user.ID).First(&existing).Error == nil {
			return tx.Model(&models.Profile{}).
				Where("user_id = ?", user.ID).
				Updates(map[string]interface{}{
					"bio":      profile.Bio,
					"phone":    profile.Phone,
					"location": profile.Location,
					"website":  profile.Website,
				}).Error
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
