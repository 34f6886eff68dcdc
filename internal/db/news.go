package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// News retrieves articles sorted by creation time, newest first.
// With publishedOnly set, unpublished drafts are excluded.
func (r *Repository) News(ctx context.Context, publishedOnly bool) ([]NewsArticle, error) {
	var news []NewsArticle
	query := r.db.ModelContext(ctx, &news).
		OrderExpr(`"t"."created_at" DESC`)

	if publishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}

	return news, nil
}

func (r *Repository) NewsByID(ctx context.Context, id string) (*NewsArticle, error) {
	article := &NewsArticle{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by id: %w", err)
	}

	return article, nil
}

func (r *Repository) NewsBySlug(ctx context.Context, slug string) (*NewsArticle, error) {
	article := &NewsArticle{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get news by slug: %w", err)
	}

	return article, nil
}

func (r *Repository) CreateNews(ctx context.Context, article *NewsArticle) error {
	now := time.Now()
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	article.CreatedAt = now
	article.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, article).Insert(); err != nil {
		return fmt.Errorf("failed to insert news: %w", err)
	}

	return nil
}

// UpdateNews applies the named columns of article to the stored row and
// returns the row as persisted. Columns not listed keep their stored values.
// Returns nil when no row matches the article's ID.
func (r *Repository) UpdateNews(ctx context.Context, article *NewsArticle, columns []string) (*NewsArticle, error) {
	if len(columns) == 0 {
		return r.NewsByID(ctx, article.ID)
	}

	article.UpdatedAt = time.Now()
	columns = appendColumn(columns, "updated_at")

	res, err := r.db.ModelContext(ctx, article).
		Column(columns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return article, nil
}

// DeleteNews removes the article and reports whether a row was deleted.
func (r *Repository) DeleteNews(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*NewsArticle)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) NewsCount(ctx context.Context, publishedOnly bool) (int, error) {
	query := r.db.ModelContext(ctx, (*NewsArticle)(nil))
	if publishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get news count: %w", err)
	}

	return count, nil
}
