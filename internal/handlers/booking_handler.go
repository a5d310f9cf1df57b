package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abagency/backend/internal/booking"
)

func BookingAvailability(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"availability": booking.Availability(time.Now())})
}
