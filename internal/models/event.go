package models

import "time"

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	EventDate time.Time `gorm:"type:date;not null" json:"event_date"`
	Location  string    `gorm:"size:255" json:"location"`
}

func (Event) TableName() string { return "events" }
