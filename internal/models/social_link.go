package models

import "time"

type SocialLink struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Platform    string    `gorm:"type:varchar(50);not null" json:"platform"`
	URL         string    `gorm:"type:varchar(500);not null" json:"url"`
	DisplayText string    `gorm:"type:varchar(100)" json:"display_text"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
