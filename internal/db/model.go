package db

import (
	"time"

	"github.com/oilquip/site-api/internal/richtext"
)

// Employment types accepted for job postings. The same set is enforced by a
// CHECK constraint on the table.
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
)

type NewsArticle struct {
	tableName struct{} `pg:"news_articles,alias:t,discard_unknown_columns"`

	ID            string         `pg:"id,pk,type:uuid"`
	Title         string         `pg:"title,use_zero"`
	Slug          string         `pg:"slug,use_zero"`
	Excerpt       *string        `pg:"excerpt"`
	Content       *richtext.Node `pg:"content,type:jsonb"`
	FeaturedImage *string        `pg:"featured_image"`
	Published     bool           `pg:"published,use_zero"`
	PublishedAt   *time.Time     `pg:"published_at"`
	AuthorID      *string        `pg:"author_id,type:uuid"`
	CreatedAt     time.Time      `pg:"created_at,use_zero"`
	UpdatedAt     time.Time      `pg:"updated_at,use_zero"`
}

type JobPosting struct {
	tableName struct{} `pg:"job_postings,alias:t,discard_unknown_columns"`

	ID             string         `pg:"id,pk,type:uuid"`
	Title          string         `pg:"title,use_zero"`
	Slug           string         `pg:"slug,use_zero"`
	Department     *string        `pg:"department"`
	Location       string         `pg:"location,use_zero"`
	EmploymentType string         `pg:"employment_type,use_zero"`
	SalaryRange    *string        `pg:"salary_range"`
	Description    *richtext.Node `pg:"description,type:jsonb"`
	Requirements   *richtext.Node `pg:"requirements,type:jsonb"`
	Published      bool           `pg:"published,use_zero"`
	CreatedAt      time.Time      `pg:"created_at,use_zero"`
	UpdatedAt      time.Time      `pg:"updated_at,use_zero"`
}

type ResourceCategory struct {
	tableName struct{} `pg:"resource_categories,alias:t,discard_unknown_columns"`

	ID           string    `pg:"id,pk,type:uuid"`
	Name         string    `pg:"name,use_zero"`
	Slug         string    `pg:"slug,use_zero"`
	Description  *string   `pg:"description"`
	Icon         *string   `pg:"icon"`
	DisplayOrder int       `pg:"display_order,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
}

type Resource struct {
	tableName struct{} `pg:"resources,alias:t,discard_unknown_columns"`

	ID            string    `pg:"id,pk,type:uuid"`
	Title         string    `pg:"title,use_zero"`
	Description   *string   `pg:"description"`
	CategoryID    *string   `pg:"category_id,type:uuid"`
	FileURL       string    `pg:"file_url,use_zero"`
	FileType      *string   `pg:"file_type"`
	FileSize      *int64    `pg:"file_size"`
	ThumbnailURL  *string   `pg:"thumbnail_url"`
	Published     bool      `pg:"published,use_zero"`
	DisplayOrder  int       `pg:"display_order,use_zero"`
	DownloadCount int       `pg:"download_count,use_zero"`
	CreatedAt     time.Time `pg:"created_at,use_zero"`
	UpdatedAt     time.Time `pg:"updated_at,use_zero"`

	Category *ResourceCategory `pg:"fk:category_id,rel:has-one"`
}

type Admin struct {
	tableName struct{} `pg:"admins,alias:t,discard_unknown_columns"`

	ID           string    `pg:"id,pk,type:uuid"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"password_hash,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
}
