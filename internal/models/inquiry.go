package models

import "time"

// Inquiry is an anonymous lead captured from the public contact form. It has
// no owning user.
type Inquiry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	EventType  string    `gorm:"size:255;not null" json:"event_type"`
	EventDate  time.Time `gorm:"type:date;not null" json:"event_date"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Inquiry) TableName() string { return "inquiries" }
