package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

func (r *Repository) AdminByEmail(ctx context.Context, email string) (*Admin, error) {
	admin := &Admin{}
	err := r.db.ModelContext(ctx, admin).
		Where(`"t"."email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

// EnsureAdmin inserts the bootstrap admin account unless the email is
// already registered. Called once on startup.
func (r *Repository) EnsureAdmin(ctx context.Context, email, passwordHash string) error {
	if email == "" || passwordHash == "" {
		return nil
	}

	admin := &Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	_, err := r.db.ModelContext(ctx, admin).
		OnConflict("(email) DO NOTHING").
		Insert()
	if err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}

	return nil
}
