package models

import "time"

type Message struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SenderID      uint      `gorm:"not null;index" json:"sender_id"`
	RecipientID   *uint     `gorm:"index" json:"recipient_id"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CreatedAt     time.Time `json:"created_at"`
	IsToModerator bool      `gorm:"default:false" json:"is_to_moderator"`
}

func (Message) TableName() string { return "messages" }
