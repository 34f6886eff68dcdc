package rpc

import (
	"html/template"
	"time"
)

type NewsFilter struct {
	Published bool `json:"published"`
}

type NewsBySlugRequest struct {
	Slug string `json:"slug"`
}

type NewsSummary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type News struct {
	NewsSummary
	FeaturedImage *string       `json:"featuredImage"`
	ContentHTML   template.HTML `json:"contentHtml"`
}
