package models

import "time"

// ProfileClick records a public profile view, counted in admin statistics.
type ProfileClick struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ClickedAt time.Time `json:"clicked_at"`
}
