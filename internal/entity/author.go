package entity

import (
	"time"
)

// Author represents a byline identity. Authors are created lazily by the
// ingestion pipeline keyed only by display name, so distinct people sharing
// a name collapse into one row. ExternalID is the opt-in stronger identity
// key for curated authors.
type Author struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	ExternalID     *string   `gorm:"uniqueIndex" json:"external_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	OutletAssociations []AuthorOutletAssociation `gorm:"foreignKey:AuthorID" json:"outlet_associations,omitempty"`
}

// TableName specifies the table name for the Author model.
func (Author) TableName() string {
	return "authors"
}

// AuthorOutletAssociation is a time-bounded contributor relationship
// between an Author and a NewsOutlet. Curated manually, not by ingestion.
type AuthorOutletAssociation struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	AuthorID  uint       `gorm:"not null" json:"author_id"`
	OutletID  uint       `gorm:"not null" json:"outlet_id"`
	StartDate time.Time  `gorm:"not null" json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Role      string     `json:"role"`

	Author *Author     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Outlet *NewsOutlet `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}

// TableName specifies the table name for the AuthorOutletAssociation model.
func (AuthorOutletAssociation) TableName() string {
	return "author_outlet_associations"
}
