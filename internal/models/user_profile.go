package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ThemeSettings is a free-form key-value map stored as a JSON column.
type ThemeSettings map[string]any

func (t ThemeSettings) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *ThemeSettings) Scan(value any) error {
	if value == nil {
		*t = ThemeSettings{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported theme settings type %T", value)
	}

	if len(data) == 0 {
		*t = ThemeSettings{}
		return nil
	}
	return json.Unmarshal(data, t)
}

type UserProfile struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	UserID        uint          `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName   string        `gorm:"type:varchar(100)" json:"display_name"`
	Bio           string        `gorm:"type:text" json:"bio"`
	AvatarURL     string        `gorm:"type:varchar(500)" json:"avatar_url"`
	ThemeSettings ThemeSettings `gorm:"type:text" json:"theme_settings"`
	IsPublic      bool          `gorm:"not null;default:true" json:"is_public"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
