package entity

import (
	"time"
)

// Event is a real-world happening that may be described by facts drawn
// from multiple articles. The simple ingestion path creates one event per
// newly seen article; no cross-article clustering exists yet.
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Facts []EventFact `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"facts,omitempty"`
}

// TableName specifies the table name for the Event model.
func (Event) TableName() string {
	return "events"
}

// EventFact is one atomic statement about an event.
type EventFact struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EventID        uint      `gorm:"not null" json:"event_id"`
	Content        string    `gorm:"not null" json:"content"`
	Newsworthiness float64   `gorm:"not null" json:"newsworthiness"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Sources []EventFactSource `gorm:"foreignKey:EventFactID;constraint:OnDelete:CASCADE" json:"sources,omitempty"`
}

// TableName specifies the table name for the EventFact model.
func (EventFact) TableName() string {
	return "event_facts"
}

// EventFactSource links an article-level fact to the event-level fact it
// supports. ContributionWeight is the strength of that support, 1.0 by
// default.
type EventFactSource struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	EventFactID        uint    `gorm:"not null" json:"event_fact_id"`
	ArticleFactID      uint    `gorm:"not null" json:"article_fact_id"`
	ContributionWeight float64 `gorm:"not null;default:1.0" json:"contribution_weight"`

	ArticleFact *ArticleFact `gorm:"foreignKey:ArticleFactID" json:"article_fact,omitempty"`
}

// TableName specifies the table name for the EventFactSource model.
func (EventFactSource) TableName() string {
	return "event_fact_sources"
}
