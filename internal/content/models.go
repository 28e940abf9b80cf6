package content

import (
	"time"

	"github.com/goliatone/go-content-site/internal/filter"
)

// Field projections requested from the store. Reads never use select=*.
var (
	PostFields       = []string{"id", "title", "content", "created_at", "category_slug", "cover_url", "user_id"}
	CategoryFields   = []string{"id", "name", "slug", "created_at"}
	SubscriberFields = []string{"id", "email", "created_at"}
)

// Post is an article row. CategorySlug references Category.Slug.
type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	CategorySlug string     `json:"category_slug,omitempty"`
	CoverURL     string     `json:"cover_url,omitempty"`
	AuthorID     string     `json:"user_id,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// FilterFields implements filter.Filterable.
func (p Post) FilterFields() filter.Fields {
	return filter.Fields{Title: p.Title, Content: p.Content, CategorySlug: p.CategorySlug}
}

// Category is a category row.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Subscriber is a newsletter_subscribers row.
type Subscriber struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// NewPost is the payload for CreatePost.
type NewPost struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	CategorySlug string `json:"category_slug,omitempty"`
	AuthorID     string `json:"user_id,omitempty"`
}

// ContactMessage is the payload written to contact_messages.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubscribeResult reports a newsletter sign-up. AlreadySubscribed is set when
// the address was on the list before; Subscriber is nil in that case.
type SubscribeResult struct {
	Subscriber        *Subscriber `json:"subscriber,omitempty"`
	AlreadySubscribed bool        `json:"already_subscribed"`
}
