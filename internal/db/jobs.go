package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

// Jobs retrieves postings sorted by creation time, newest first.
func (r *Repository) Jobs(ctx context.Context, publishedOnly bool) ([]JobPosting, error) {
	var jobs []JobPosting
	query := r.db.ModelContext(ctx, &jobs).
		OrderExpr(`"t"."created_at" DESC`)

	if publishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	return jobs, nil
}

func (r *Repository) JobByID(ctx context.Context, id string) (*JobPosting, error) {
	job := &JobPosting{}
	err := r.db.ModelContext(ctx, job).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return job, nil
}

func (r *Repository) JobBySlug(ctx context.Context, slug string) (*JobPosting, error) {
	job := &JobPosting{}
	err := r.db.ModelContext(ctx, job).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get job by slug: %w", err)
	}

	return job, nil
}

func (r *Repository) CreateJob(ctx context.Context, job *JobPosting) error {
	now := time.Now()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, job).Insert(); err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

func (r *Repository) UpdateJob(ctx context.Context, job *JobPosting, columns []string) (*JobPosting, error) {
	if len(columns) == 0 {
		return r.JobByID(ctx, job.ID)
	}

	job.UpdatedAt = time.Now()
	columns = appendColumn(columns, "updated_at")

	res, err := r.db.ModelContext(ctx, job).
		Column(columns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return job, nil
}

func (r *Repository) DeleteJob(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*JobPosting)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) JobsCount(ctx context.Context, publishedOnly bool) (int, error) {
	query := r.db.ModelContext(ctx, (*JobPosting)(nil))
	if publishedOnly {
		query = query.Where(`"t"."published" = TRUE`)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get jobs count: %w", err)
	}

	return count, nil
}
