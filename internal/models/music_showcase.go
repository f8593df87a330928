package models

import "time"

type ShowcaseItemType string

const (
	ItemTypeAlbum  ShowcaseItemType = "album"
	ItemTypeSingle ShowcaseItemType = "single"
	ItemTypeEP     ShowcaseItemType = "ep"
	ItemTypeTrack  ShowcaseItemType = "track"
)

type MusicShowcase struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	UserID        uint             `gorm:"index:idx_showcase_user_item,unique;not null" json:"user_id"`
	SpotifyItemID string           `gorm:"type:varchar(100);index:idx_showcase_user_item,unique;not null" json:"spotify_item_id"`
	ItemType      ShowcaseItemType `gorm:"type:varchar(20);not null" json:"item_type"`
	ItemName      string           `gorm:"type:varchar(200);not null" json:"item_name"`
	ArtistNames   string           `gorm:"type:text;not null" json:"artist_names"`
	ImageURL      string           `gorm:"type:varchar(500)" json:"image_url"`
	SpotifyURL    string           `gorm:"type:varchar(300);not null" json:"spotify_url"`
	Position      int              `gorm:"not null;default:0" json:"position"`
	CreatedAt     time.Time        `json:"created_at"`
}
