package models

import "time"

type Subscription struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Plan        string     `gorm:"size:100;not null" json:"plan"`
	Status      string     `gorm:"size:50;not null" json:"status"`
	RenewalDate *time.Time `gorm:"type:date" json:"renewal_date"`
}

func (Subscription) TableName() string { return "subscriptions" }
