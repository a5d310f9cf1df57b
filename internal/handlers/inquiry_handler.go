package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abagency/backend/internal/helpers"
	"github.com/abagency/backend/internal/mailer"
	"github.com/abagency/backend/internal/middleware"
	"github.com/abagency/backend/internal/models"
)

type InquiryRequest struct {
	ClientName helpers.FlexString `json:"client_name" form:"client_name"`
	Email      helpers.FlexString `json:"email" form:"email"`
	EventType  helpers.FlexString `json:"event_type" form:"event_type"`
	EventDate  helpers.FlexString `json:"event_date" form:"event_date"`
	Message    helpers.FlexString `json:"message" form:"message"`
}

// SubmitInquiry records an anonymous booking lead. The client always sees
// success once validation passes: if the database insert fails, the payload
// is appended to a local jsonl file instead, and email notification is best
// effort on top of either outcome.
func SubmitInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBind(&req); err != nil {
		helpers.RespondStatusError(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	fields := []inquiryField{
		{"client_name", strings.TrimSpace(req.ClientName.String())},
		{"email", strings.TrimSpace(req.Email.String())},
		{"event_type", strings.TrimSpace(req.EventType.String())},
		{"event_date", strings.TrimSpace(req.EventDate.String())},
		{"message", strings.TrimSpace(req.Message.String())},
	}

	missing := []string{}
	for _, field := range fields {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "missing": missing})
		return
	}

	cfg := middleware.GetConfig(c)
	inquiry := models.Inquiry{
		ClientName: fields[0].value,
		Email:      fields[1].value,
		EventType:  fields[2].value,
		Message:    fields[4].value,
	}

	persisted := false
	eventDate, dateErr := helpers.ParseDate(fields[3].value)
	if dateErr == nil {
		inquiry.EventDate = eventDate

		db, exists := c.Get("db")
		if exists {
			gormDB := db.(*gorm.DB)
			err := gormDB.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&inquiry).Error
			})
			persisted = err == nil
		}
	}

	if !persisted {
		appendInquiryLog(cfg.InquiryLogPath, fields)
	}

	// Notify with the submitted values, not the model: the raw date string
	// must reach the recipient even when it never parsed.
	middleware.GetNotifier(c).InquiryReceived(mailer.InquiryNotice{
		ClientName: fields[0].value,
		Email:      fields[1].value,
		EventType:  fields[2].value,
		EventDate:  fields[3].value,
		Message:    fields[4].value,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type inquiryField struct {
	name  string
	value string
}

// appendInquiryLog is the durability fallback: one JSON object per line so a
// human can replay lost leads later.
func appendInquiryLog(path string, fields []inquiryField) {
	payload := map[string]string{}
	for _, field := range fields {
		payload[field.name] = field.value
	}

	line, err := json.Marshal(payload)
	if err != nil {
		log.Printf("inquiry fallback marshal failed: %v", err)
		return
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("inquiry fallback open failed: %v", err)
		return
	}
	defer file.Close()

	if _, err := file.Write(append(line, '\n')); err != nil {
		log.Printf("inquiry fallback write failed: %v", err)
	}
}
