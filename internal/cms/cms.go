// Package cms holds the content-management rules shared by the REST and RPC
// surfaces: required-field validation, publish bookkeeping and the dashboard
// statistics. Persistence itself lives in internal/db.
package cms

import (
	"context"
	"errors"
	"fmt"

	"github.com/oilquip/site-api/internal/db"
)

// ErrNotFound reports an operation against an id that has no stored record.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a create payload missing a required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

func (m *Manager) AdminByEmail(ctx context.Context, email string) (*db.Admin, error) {
	admin, err := m.db.AdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get admin: %w", err)
	}

	return admin, nil
}
