package entity

import (
	"time"
)

// MaxFeaturedBlogs is the per-author cap on concurrently featured blogs.
const MaxFeaturedBlogs = 6

// Blog is a published article owned by a single author.
type Blog struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	Tags       []string  `bson:"tags" json:"tags"`
	Image      string    `bson:"image,omitempty" json:"image,omitempty"`
	AuthorID   string    `bson:"author_id" json:"author_id"`
	IsFeatured bool      `bson:"is_featured" json:"is_featured"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Comment belongs to one blog and is authored by one user.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	BlogID    string    `bson:"blog_id" json:"blog_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TagCount is one row of a tag popularity aggregation.
type TagCount struct {
	Tag   string `bson:"_id" json:"tag"`
	Count int64  `bson:"count" json:"count"`
}
