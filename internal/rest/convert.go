package rest

import (
	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewNews(n db.NewsArticle) News {
	return News{
		ID:            n.ID,
		Title:         n.Title,
		Slug:          n.Slug,
		Excerpt:       n.Excerpt,
		Content:       n.Content,
		ContentHTML:   richtext.Render(n.Content),
		FeaturedImage: n.FeaturedImage,
		Published:     n.Published,
		PublishedAt:   n.PublishedAt,
		AuthorID:      n.AuthorID,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func NewJob(j db.JobPosting) Job {
	return Job{
		ID:               j.ID,
		Title:            j.Title,
		Slug:             j.Slug,
		Department:       j.Department,
		Location:         j.Location,
		EmploymentType:   j.EmploymentType,
		SalaryRange:      j.SalaryRange,
		Description:      j.Description,
		DescriptionHTML:  richtext.Render(j.Description),
		Requirements:     j.Requirements,
		RequirementsHTML: richtext.Render(j.Requirements),
		Published:        j.Published,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func NewCategory(c db.ResourceCategory) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}

func NewResource(r db.Resource) Resource {
	resource := Resource{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		FileURL:       r.FileURL,
		FileType:      r.FileType,
		FileSize:      r.FileSize,
		ThumbnailURL:  r.ThumbnailURL,
		Published:     r.Published,
		DisplayOrder:  r.DisplayOrder,
		DownloadCount: r.DownloadCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	if r.Category != nil {
		category := NewCategory(*r.Category)
		resource.Category = &category
	}

	return resource
}
