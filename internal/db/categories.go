package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Categories retrieves resource categories ordered by display_order,
// falling back to creation time for equal orders.
func (r *Repository) Categories(ctx context.Context) ([]ResourceCategory, error) {
	var categories []ResourceCategory
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."display_order" ASC`).
		OrderExpr(`"t"."created_at" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id string) (*ResourceCategory, error) {
	category := &ResourceCategory{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*ResourceCategory, error) {
	category := &ResourceCategory{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *ResourceCategory) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	category.CreatedAt = time.Now()

	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *ResourceCategory, columns []string) (*ResourceCategory, error) {
	if len(columns) == 0 {
		return r.CategoryByID(ctx, category.ID)
	}

	res, err := r.db.ModelContext(ctx, category).
		Column(columns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return category, nil
}

// DeleteCategory removes the category. Resources referencing it keep
// existing with a cleared category_id (ON DELETE SET NULL).
func (r *Repository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*ResourceCategory)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
