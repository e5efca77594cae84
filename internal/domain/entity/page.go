package entity

import (
	"time"
)

// PageType enumerates the static pages editable from the dashboard.
type PageType string

const (
	PageAboutUs       PageType = "about-us"
	PagePrivacyPolicy PageType = "privacy-policy"
	PageTermsOfUse    PageType = "terms-of-use"
)

// IsValid reports whether p is one of the known page types.
func (p PageType) IsValid() bool {
	switch p {
	case PageAboutUs, PagePrivacyPolicy, PageTermsOfUse:
		return true
	}
	return false
}

// Page is the content of one static site page, unique per type.
type Page struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       PageType  `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
