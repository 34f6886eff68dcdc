package cms

import (
	"context"
	"fmt"

	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

func validEmploymentType(t string) bool {
	switch t {
	case db.EmploymentFullTime, db.EmploymentPartTime, db.EmploymentContract, db.EmploymentInternship:
		return true
	}
	return false
}

// Jobs retrieves postings, newest first. publishedOnly hides drafts.
func (m *Manager) Jobs(ctx context.Context, publishedOnly bool) ([]db.JobPosting, error) {
	jobs, err := m.db.Jobs(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("db get jobs: %w", err)
	}

	return jobs, nil
}

func (m *Manager) JobByID(ctx context.Context, id string) (*db.JobPosting, error) {
	job, err := m.db.JobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get job by id: %w", err)
	}

	return job, nil
}

func (m *Manager) JobBySlug(ctx context.Context, slug string) (*db.JobPosting, error) {
	job, err := m.db.JobBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get job by slug: %w", err)
	}

	return job, nil
}

func (m *Manager) CreateJob(ctx context.Context, job *db.JobPosting) (*db.JobPosting, error) {
	if job.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if job.Slug == "" {
		return nil, &ValidationError{Field: "slug"}
	}
	if job.Location == "" {
		return nil, &ValidationError{Field: "location"}
	}
	if !validEmploymentType(job.EmploymentType) {
		return nil, &ValidationError{Field: "employment_type"}
	}
	if richtext.Empty(job.Description) {
		return nil, &ValidationError{Field: "description"}
	}

	if err := m.db.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("db create job: %w", err)
	}

	return job, nil
}

func (m *Manager) UpdateJob(ctx context.Context, job *db.JobPosting, columns []string) (*db.JobPosting, error) {
	if containsColumn(columns, "employment_type") && !validEmploymentType(job.EmploymentType) {
		return nil, &ValidationError{Field: "employment_type"}
	}

	updated, err := m.db.UpdateJob(ctx, job, columns)
	if err != nil {
		return nil, fmt.Errorf("db update job: %w", err)
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	return updated, nil
}

func (m *Manager) DeleteJob(ctx context.Context, id string) error {
	if _, err := m.db.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("db delete job: %w", err)
	}

	return nil
}
