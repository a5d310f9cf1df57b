package models

import "time"

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type MediaAsset struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	MediaType  string    `gorm:"size:20;not null" json:"media_type"`
	URL        string    `gorm:"column:url;size:500;not null" json:"url"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (MediaAsset) TableName() string { return "media_assets" }
