package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/abagency/backend/internal/gallery"
	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
)

// ListAssets scans the public gallery directory on every request; ids are
// stable only within one response.
func ListAssets(c *gin.Context) {
	cfg := middleware.GetConfig(c)
	c.JSON(http.StatusOK, gin.H{"assets": gallery.Scan(cfg.AssetDir)})
}

func AssetFile(c *gin.Context) {
	cfg := middleware.GetConfig(c)

	// Base() strips any traversal attempt.
	filename := filepath.Base(c.Param("filename"))
	if filename == "." || filename == "/" {
		helpers.RespondWithError(c, http.StatusNotFound, "Asset not found.")
		return
	}
	c.File(filepath.Join(cfg.AssetDir, filename))
}

func Milestones(c *gin.Context) {
	cfg := middleware.GetConfig(c)
	assets := gallery.Scan(cfg.AssetDir)
	c.JSON(http.StatusOK, gin.H{"milestones": gallery.Milestones(assets)})
}
