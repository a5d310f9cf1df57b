package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleCommunity = "community"
	RoleUser      = "user"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Name         string    `gorm:"size:255" json:"name"`
	Role         string    `gorm:"size:50;default:user" json:"role"`
	HeroVideoURL string    `gorm:"column:hero_video_url;size:500" json:"hero_video_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
