package rest

import (
	"html/template"
	"time"

	"github.com/oilquip/site-api/internal/richtext"
)

type News struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Excerpt       *string        `json:"excerpt"`
	Content       *richtext.Node `json:"content"`
	ContentHTML   template.HTML  `json:"content_html"`
	FeaturedImage *string        `json:"featured_image"`
	Published     bool           `json:"published"`
	PublishedAt   *time.Time     `json:"published_at"`
	AuthorID      *string        `json:"author_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Job struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Department       *string        `json:"department"`
	Location         string         `json:"location"`
	EmploymentType   string         `json:"employment_type"`
	SalaryRange      *string        `json:"salary_range"`
	Description      *richtext.Node `json:"description"`
	DescriptionHTML  template.HTML  `json:"description_html"`
	Requirements     *richtext.Node `json:"requirements"`
	RequirementsHTML template.HTML  `json:"requirements_html"`
	Published        bool           `json:"published"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	Icon         *string   `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Resource struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	CategoryID    *string   `json:"category_id"`
	FileURL       string    `json:"file_url"`
	FileType      *string   `json:"file_type"`
	FileSize      *int64    `json:"file_size"`
	ThumbnailURL  *string   `json:"thumbnail_url"`
	Published     bool      `json:"published"`
	DisplayOrder  int       `json:"display_order"`
	DownloadCount int       `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Category      *Category `json:"category,omitempty"`
}

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
