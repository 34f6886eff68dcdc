package rest

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

// Request bodies share one shape for create and update. For updates the set
// of keys actually present in the JSON decides which columns change; a key
// carrying null clears its column.

type NewsBody struct {
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Excerpt       *string        `json:"excerpt"`
	Content       *richtext.Node `json:"content"`
	FeaturedImage *string        `json:"featured_image"`
	Published     bool           `json:"published"`
	PublishedAt   *time.Time     `json:"published_at"`
	AuthorID      *string        `json:"author_id"`
}

func (b NewsBody) toDB(id string) *db.NewsArticle {
	return &db.NewsArticle{
		ID:            id,
		Title:         b.Title,
		Slug:          b.Slug,
		Excerpt:       b.Excerpt,
		Content:       b.Content,
		FeaturedImage: b.FeaturedImage,
		Published:     b.Published,
		PublishedAt:   b.PublishedAt,
		AuthorID:      b.AuthorID,
	}
}

type JobBody struct {
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Department     *string        `json:"department"`
	Location       string         `json:"location"`
	EmploymentType string         `json:"employment_type"`
	SalaryRange    *string        `json:"salary_range"`
	Description    *richtext.Node `json:"description"`
	Requirements   *richtext.Node `json:"requirements"`
	Published      bool           `json:"published"`
}

func (b JobBody) toDB(id string) *db.JobPosting {
	return &db.JobPosting{
		ID:             id,
		Title:          b.Title,
		Slug:           b.Slug,
		Department:     b.Department,
		Location:       b.Location,
		EmploymentType: b.EmploymentType,
		SalaryRange:    b.SalaryRange,
		Description:    b.Description,
		Requirements:   b.Requirements,
		Published:      b.Published,
	}
}

type CategoryBody struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder int     `json:"display_order"`
}

func (b CategoryBody) toDB(id string) *db.ResourceCategory {
	return &db.ResourceCategory{
		ID:           id,
		Name:         b.Name,
		Slug:         b.Slug,
		Description:  b.Description,
		Icon:         b.Icon,
		DisplayOrder: b.DisplayOrder,
	}
}

type ResourceBody struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	CategoryID   *string `json:"category_id"`
	FileURL      string  `json:"file_url"`
	FileType     *string `json:"file_type"`
	FileSize     *int64  `json:"file_size"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Published    bool    `json:"published"`
	DisplayOrder int     `json:"display_order"`
}

func (b ResourceBody) toDB(id string) *db.Resource {
	return &db.Resource{
		ID:           id,
		Title:        b.Title,
		Description:  b.Description,
		CategoryID:   b.CategoryID,
		FileURL:      b.FileURL,
		FileType:     b.FileType,
		FileSize:     b.FileSize,
		ThumbnailURL: b.ThumbnailURL,
		Published:    b.Published,
		DisplayOrder: b.DisplayOrder,
	}
}

// JSON keys match column names, so presence maps double as column
// whitelists. Keys outside the map (id, created_at, joined data) are
// ignored by updates.
var (
	newsColumns = map[string]bool{
		"title": true, "slug": true, "excerpt": true, "content": true,
		"featured_image": true, "published": true, "published_at": true,
		"author_id": true,
	}
	jobColumns = map[string]bool{
		"title": true, "slug": true, "department": true, "location": true,
		"employment_type": true, "salary_range": true, "description": true,
		"requirements": true, "published": true,
	}
	categoryColumns = map[string]bool{
		"name": true, "slug": true, "description": true, "icon": true,
		"display_order": true,
	}
	resourceColumns = map[string]bool{
		"title": true, "description": true, "category_id": true,
		"file_url": true, "file_type": true, "file_size": true,
		"thumbnail_url": true, "published": true, "display_order": true,
	}
)

// decodeBody unmarshals the request into body and reports which top-level
// keys the payload carried.
func decodeBody(c echo.Context, body any) (map[string]json.RawMessage, error) {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, body); err != nil {
		return nil, err
	}

	return raw, nil
}

func presentColumns(raw map[string]json.RawMessage, allowed map[string]bool) []string {
	columns := make([]string, 0, len(raw))
	for key := range raw {
		if allowed[key] {
			columns = append(columns, key)
		}
	}
	sort.Strings(columns)
	return columns
}
