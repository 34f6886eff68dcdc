package cms

import (
	"context"
	"fmt"

	"github.com/oilquip/site-api/internal/db"
)

// Resources retrieves downloadable resources with joined category, ordered
// by display_order. categorySlug narrows the list when non-empty.
func (m *Manager) Resources(ctx context.Context, publishedOnly bool, categorySlug string) ([]db.Resource, error) {
	resources, err := m.db.Resources(ctx, publishedOnly, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("db get resources: %w", err)
	}

	return resources, nil
}

func (m *Manager) ResourceByID(ctx context.Context, id string) (*db.Resource, error) {
	resource, err := m.db.ResourceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get resource by id: %w", err)
	}

	return resource, nil
}

func (m *Manager) CreateResource(ctx context.Context, resource *db.Resource) (*db.Resource, error) {
	if resource.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if resource.FileURL == "" {
		return nil, &ValidationError{Field: "file_url"}
	}

	if err := m.db.CreateResource(ctx, resource); err != nil {
		return nil, fmt.Errorf("db create resource: %w", err)
	}

	// Reload with the joined category for the response body.
	created, err := m.db.ResourceByID(ctx, resource.ID)
	if err != nil {
		return nil, fmt.Errorf("db get resource by id: %w", err)
	}

	return created, nil
}

func (m *Manager) UpdateResource(ctx context.Context, resource *db.Resource, columns []string) (*db.Resource, error) {
	updated, err := m.db.UpdateResource(ctx, resource, columns)
	if err != nil {
		return nil, fmt.Errorf("db update resource: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	reloaded, err := m.db.ResourceByID(ctx, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("db get resource by id: %w", err)
	}

	return reloaded, nil
}

func (m *Manager) DeleteResource(ctx context.Context, id string) error {
	if _, err := m.db.DeleteResource(ctx, id); err != nil {
		return fmt.Errorf("db delete resource: %w", err)
	}

	return nil
}

// IncrementDownload bumps the resource's download counter atomically.
// Absent ids are ignored: the public download flow must not fail because a
// record disappeared between render and click.
func (m *Manager) IncrementDownload(ctx context.Context, id string) error {
	if _, err := m.db.IncrementResourceDownloads(ctx, id); err != nil {
		return fmt.Errorf("db increment downloads: %w", err)
	}

	return nil
}
