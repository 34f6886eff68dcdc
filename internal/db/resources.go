package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Resources retrieves downloadable resources with their joined category,
// ordered by display_order. categorySlug narrows the result to one category
// when non-empty.
func (r *Repository) Resources(ctx context.Context, publishedOnly bool, categorySlug string) ([]Resource, error) {
	var resources []Resource
	query := r.db.ModelContext(ctx, &resources).
		Relation("Category").
		OrderExpr(`"t"."display_order" ASC`)

	if publishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	if categorySlug != "" {
		query = query.Where(`"category"."slug" = ?`, categorySlug)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}

	return resources, nil
}

func (r *Repository) ResourceByID(ctx context.Context, id string) (*Resource, error) {
	resource := &Resource{}
	err := r.db.ModelContext(ctx, resource).
		Relation("Category").
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get resource by id: %w", err)
	}

	return resource, nil
}

func (r *Repository) CreateResource(ctx context.Context, resource *Resource) error {
	now := time.Now()
	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}
	resource.CreatedAt = now
	resource.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, resource).Insert(); err != nil {
		return fmt.Errorf("failed to insert resource: %w", err)
	}

	return nil
}

func (r *Repository) UpdateResource(ctx context.Context, resource *Resource, columns []string) (*Resource, error) {
	if len(columns) == 0 {
		return r.ResourceByID(ctx, resource.ID)
	}

	resource.UpdatedAt = time.Now()
	columns = appendColumn(columns, "updated_at")

	res, err := r.db.ModelContext(ctx, resource).
		Column(columns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return resource, nil
}

func (r *Repository) DeleteResource(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Resource)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// IncrementResourceDownloads bumps download_count by one in a single UPDATE
// statement, so concurrent callers never lose an increment.
func (r *Repository) IncrementResourceDownloads(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Resource)(nil)).
		Set(`download_count = download_count + 1`).
		Where(`"t"."id" = ?`, id).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to increment download count: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) ResourcesCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Resource)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get resources count: %w", err)
	}

	return count, nil
}
