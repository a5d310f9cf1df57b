package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

// dummyHash is a well-formed bcrypt hash compared against when the email is
// unknown, keeping the failure path's cost constant.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name" binding:"required"`
}

func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Identifiants requis"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Identifiants requis"})
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	// Unknown email and wrong password deliberately produce the same
	// answer; bcrypt runs either way so the two are also close in timing.
	var user models.User
	err := gormDB.Where("email = ?", email).First(&user).Error
	hash := user.PasswordHash
	if err != nil {
		hash = dummyHash
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil || err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{"error": "Identifiants invalides"})
		return
	}

	cfg := middleware.GetConfig(c)
	token, err := helpers.SignSessionToken(cfg.SecretKey, user.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/workspace")
}

func Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if result := gormDB.Where("email = ?", email).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         models.RoleCommunity,
	}
	if err := gormDB.Create(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	cfg := middleware.GetConfig(c)
	token, err := helpers.SignSessionToken(cfg.SecretKey, user.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}
	middleware.SetSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"status": "ok",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		helpers.RespondStatusError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":             user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"role":           user.Role,
		"hero_video_url": user.HeroVideoURL,
	})
}
