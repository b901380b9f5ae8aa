package entity

import (
	"time"
)

// Article is one fetched page. Site is the outlet display name at scrape
// time, kept as a plain string rather than a foreign key so articles
// survive outlet renames. URL is globally unique and is the idempotency
// key for ingestion.
type Article struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Site          string    `gorm:"not null" json:"site"`
	Category      string    `json:"category"`
	URL           string    `gorm:"unique;not null" json:"url"`
	Title         string    `gorm:"not null" json:"title"`
	PublishedTime time.Time `json:"published_time"`
	ModifiedTime  time.Time `json:"modified_time"`
	AuthorID      *uint     `json:"author_id,omitempty"`
	ArticleText   string    `json:"article_text"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Author *Author       `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Facts  []ArticleFact `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"facts,omitempty"`
}

// TableName specifies the table name for the Article model.
func (Article) TableName() string {
	return "articles"
}

// ArticleFact is one atomic factual statement extracted from one article.
// Facts are owned by their article and cascade-deleted with it.
type ArticleFact struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ArticleID      uint      `gorm:"not null" json:"article_id"`
	Content        string    `gorm:"not null" json:"content"`
	Newsworthiness float64   `gorm:"not null" json:"newsworthiness"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the ArticleFact model.
func (ArticleFact) TableName() string {
	return "article_facts"
}
