package domain

import "time"

// BlogPost is a persisted blog entry. Content carries sanitized HTML.
type BlogPost struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Excerpt        string     `json:"excerpt,omitempty"`
	Content        string     `json:"content"`
	FeaturedImage  string     `json:"featuredImage,omitempty"`
	IsPublished    bool       `json:"isPublished"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
	CategoryID     *int       `json:"categoryId,omitempty"`
	AuthorID       string     `json:"authorId,omitempty"`
	Tags           []string   `json:"tags"`
	ReadTime       string     `json:"readTime,omitempty"`
	SEOTitle       string     `json:"seoTitle,omitempty"`
	SEODescription string     `json:"seoDescription,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
