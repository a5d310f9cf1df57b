package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

// UploadMedia stores a multipart file under the current user's upload
// directory and registers it in the media library.
func UploadMedia(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if fileHeader.Filename == "" {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid filename")
		return
	}

	cfg := middleware.GetConfig(c)
	filename, err := helpers.SaveUserUpload(c, fileHeader, cfg.UploadDir, user.ID)
	if err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, err.Error())
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	url := fmt.Sprintf("/uploads/%d/%s", user.ID, filename)
	asset := models.MediaAsset{
		UserID:    user.ID,
		MediaType: helpers.MediaTypeForFilename(filename),
		URL:       url,
	}
	if err := gormDB.Create(&asset).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register media.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "url": url})
}

type MediaURLRequest struct {
	URL       helpers.FlexString `json:"url" form:"url"`
	MediaType helpers.FlexString `json:"media_type" form:"media_type"`
}

// AddMediaURL registers an externally hosted media URL.
func AddMediaURL(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req MediaURLRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	url := strings.TrimSpace(req.URL.String())
	if url == "" {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Missing URL")
		return
	}

	mediaType := req.MediaType.String()
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	asset := models.MediaAsset{
		UserID:    user.ID,
		MediaType: mediaType,
		URL:       url,
	}
	if err := gormDB.Create(&asset).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register media.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
