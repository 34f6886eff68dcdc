package cms

import (
	"context"
	"fmt"

	"github.com/oilquip/site-api/internal/db"
)

// Categories retrieves resource categories in display order.
func (m *Manager) Categories(ctx context.Context) ([]db.ResourceCategory, error) {
	categories, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return categories, nil
}

func (m *Manager) CategoryByID(ctx context.Context, id string) (*db.ResourceCategory, error) {
	category, err := m.db.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	}

	return category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, category *db.ResourceCategory) (*db.ResourceCategory, error) {
	if category.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if category.Slug == "" {
		return nil, &ValidationError{Field: "slug"}
	}

	if err := m.db.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	return category, nil
}

func (m *Manager) UpdateCategory(ctx context.Context, category *db.ResourceCategory, columns []string) (*db.ResourceCategory, error) {
	updated, err := m.db.UpdateCategory(ctx, category, columns)
	if err != nil {
		return nil, fmt.Errorf("db update category: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

// DeleteCategory removes the category; resources that referenced it are kept
// and their category_id cleared by the schema's ON DELETE SET NULL.
func (m *Manager) DeleteCategory(ctx context.Context, id string) error {
	if _, err := m.db.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}

	return nil
}
