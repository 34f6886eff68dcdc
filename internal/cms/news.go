package cms

import (
	"context"
	"fmt"
	"time"

	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

// News retrieves articles, newest first. publishedOnly hides drafts.
func (m *Manager) News(ctx context.Context, publishedOnly bool) ([]db.NewsArticle, error) {
	news, err := m.db.News(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("db get news: %w", err)
	}

	return news, nil
}

func (m *Manager) NewsByID(ctx context.Context, id string) (*db.NewsArticle, error) {
	article, err := m.db.NewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get news by id: %w", err)
	}

	return article, nil
}

func (m *Manager) NewsBySlug(ctx context.Context, slug string) (*db.NewsArticle, error) {
	article, err := m.db.NewsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get news by slug: %w", err)
	}

	return article, nil
}

// CreateNews validates required fields, stamps published_at on articles
// created already published, and persists the article. Slug uniqueness is
// enforced by the table's unique constraint.
func (m *Manager) CreateNews(ctx context.Context, article *db.NewsArticle) (*db.NewsArticle, error) {
	if article.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if article.Slug == "" {
		return nil, &ValidationError{Field: "slug"}
	}
	if richtext.Empty(article.Content) {
		return nil, &ValidationError{Field: "content"}
	}

	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := m.db.CreateNews(ctx, article); err != nil {
		return nil, fmt.Errorf("db create news: %w", err)
	}

	return article, nil
}

// UpdateNews applies a partial update: only the named columns change, and a
// column set from an explicit null clears the field. The first flip to
// published stamps published_at.
func (m *Manager) UpdateNews(ctx context.Context, article *db.NewsArticle, columns []string) (*db.NewsArticle, error) {
	if containsColumn(columns, "published") && article.Published && !containsColumn(columns, "published_at") {
		current, err := m.db.NewsByID(ctx, article.ID)
		if err != nil {
			return nil, fmt.Errorf("db get news by id: %w", err)
		}
		if current == nil {
			return nil, ErrNotFound
		}
		if current.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
			columns = append(columns, "published_at")
		}
	}

	updated, err := m.db.UpdateNews(ctx, article, columns)
	if err != nil {
		return nil, fmt.Errorf("db update news: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

// DeleteNews removes the article. Deleting an absent id is a no-op, not an
// error. Referenced storage objects are left in place.
func (m *Manager) DeleteNews(ctx context.Context, id string) error {
	if _, err := m.db.DeleteNews(ctx, id); err != nil {
		return fmt.Errorf("db delete news: %w", err)
	}

	return nil
}

func containsColumn(columns []string, col string) bool {
	for _, c := range columns {
		if c == col {
			return true
		}
	}
	return false
}
