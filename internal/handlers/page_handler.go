package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abagency/backend/internal/middleware"
)

func Index(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{"current_user": user})
}
