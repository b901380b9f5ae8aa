package dto

import "time"

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OutletRequest is the create/update payload for a news outlet.
type OutletRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// AuthorRequest is the create/update payload for an author.
type AuthorRequest struct {
	Name           string  `json:"name"`
	Bio            string  `json:"bio"`
	ProfilePicture string  `json:"profile_picture"`
	ExternalID     *string `json:"external_id,omitempty"`
}

// AssociationRequest is the create/update payload for an author-outlet
// association.
type AssociationRequest struct {
	AuthorID  uint       `json:"author_id"`
	OutletID  uint       `json:"outlet_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Role      string     `json:"role"`
}

// ArticleRequest is the create/update payload for an article.
type ArticleRequest struct {
	Site          string    `json:"site"`
	Category      string    `json:"category"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	PublishedTime time.Time `json:"published_time"`
	ModifiedTime  time.Time `json:"modified_time"`
	AuthorID      *uint     `json:"author_id,omitempty"`
	ArticleText   string    `json:"article_text"`
}

// ArticleFactRequest is the create/update payload for an article fact.
type ArticleFactRequest struct {
	ArticleID      uint    `json:"article_id"`
	Content        string  `json:"content"`
	Newsworthiness float64 `json:"newsworthiness"`
}

// EventRequest is the create/update payload for an event.
type EventRequest struct {
	Title string `json:"title"`
}

// EventFactRequest is the create/update payload for an event fact.
type EventFactRequest struct {
	EventID        uint    `json:"event_id"`
	Content        string  `json:"content"`
	Newsworthiness float64 `json:"newsworthiness"`
}

// EventFactSourceRequest is the create/update payload for an evidence link.
type EventFactSourceRequest struct {
	EventFactID        uint    `json:"event_fact_id"`
	ArticleFactID      uint    `json:"article_fact_id"`
	ContributionWeight float64 `json:"contribution_weight"`
}
