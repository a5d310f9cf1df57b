package models

import "time"

type Performance struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	PerformanceDate time.Time `gorm:"type:date;not null" json:"performance_date"`
	Fee             float64   `gorm:"not null;default:0" json:"fee"`
}

func (Performance) TableName() string { return "performances" }
