package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/abagency/backend/config"
	"github.com/abagency/backend/internal/mailer"
)

func ConfigMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("cfg", cfg)
		c.Next()
	}
}

func GetConfig(c *gin.Context) *config.Config {
	cfg, exists := c.Get("cfg")
	if !exists {
		return nil
	}
	return cfg.(*config.Config)
}

func NotifierMiddleware(notifier mailer.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("notifier", notifier)
		c.Next()
	}
}

func GetNotifier(c *gin.Context) mailer.Notifier {
	notifier, exists := c.Get("notifier")
	if !exists {
		return mailer.Noop{}
	}
	return notifier.(mailer.Notifier)
}
