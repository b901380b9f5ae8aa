package entity

import (
	"time"
)

// NewsOutlet represents a publication source, e.g. a news organization.
type NewsOutlet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the NewsOutlet model.
func (NewsOutlet) TableName() string {
	return "news_outlets"
}
