package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ScrapingLog records the window covered by the most recent crawl session
// for an outlet. One row per outlet, overwritten on every run; the next
// run derives its start time from EndDate.
type ScrapingLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	OutletID    uint           `gorm:"uniqueIndex;not null" json:"outlet_id"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     time.Time      `gorm:"not null" json:"end_date"`
	LastScraped time.Time      `gorm:"not null" json:"last_scraped"`
	Categories  pq.StringArray `gorm:"type:text[]" json:"categories"`
	Stats       datatypes.JSON `json:"stats"`

	Outlet *NewsOutlet `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}

// TableName specifies the table name for the ScrapingLog model.
func (ScrapingLog) TableName() string {
	return "scraping_logs"
}
