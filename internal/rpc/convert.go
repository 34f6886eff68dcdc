package rpc

import (
	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

type NewsSummaries []NewsSummary

func NewNewsSummary(n db.NewsArticle) NewsSummary {
	return NewsSummary{
		ID:          n.ID,
		Title:       n.Title,
		Slug:        n.Slug,
		Excerpt:     n.Excerpt,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
	}
}

func NewNewsSummaries(list []db.NewsArticle) NewsSummaries {
	result := make(NewsSummaries, len(list))
	for i := range list {
		result[i] = NewNewsSummary(list[i])
	}
	return result
}

func NewNews(n db.NewsArticle) News {
	return News{
		NewsSummary:   NewNewsSummary(n),
		FeaturedImage: n.FeaturedImage,
		ContentHTML:   richtext.Render(n.Content),
	}
}
