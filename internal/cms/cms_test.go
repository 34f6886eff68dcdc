package cms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/oilquip/site-api/internal/db"
	"github.com/oilquip/site-api/internal/richtext"
)

var (
	testDB      *pg.DB
	testManager *Manager
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, []string{"admins", "news_articles", "job_postings", "resource_categories", "resources"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testManager = NewManager(db.New(testDB))

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (context.Context, *Manager) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, NewManager(db.New(tx))
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if vErr.Field != field {
		t.Fatalf("expected validation error on %q, got %q", field, vErr.Field)
	}
}

func TestManager_CreateNews_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("RequiresTitleSlugAndContent", func(t *testing.T) {
		cases := []struct {
			name    string
			article db.NewsArticle
			field   string
		}{
			{"MissingTitle", db.NewsArticle{Slug: "x", Content: db.TestDoc("x")}, "title"},
			{"MissingSlug", db.NewsArticle{Title: "x", Content: db.TestDoc("x")}, "slug"},
			{"MissingContent", db.NewsArticle{Title: "x", Slug: "x"}, "content"},
			{"BlankContent", db.NewsArticle{Title: "x", Slug: "x", Content: &richtext.Node{
				Type:    "doc",
				Content: []richtext.Node{{Type: "paragraph"}},
			}}, "content"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := manager.CreateNews(ctx, &tc.article)
				assertValidationError(t, err, tc.field)
			})
		}
	})

	t.Run("StampsPublishedAtWhenCreatedPublished", func(t *testing.T) {
		created, err := manager.CreateNews(ctx, &db.NewsArticle{
			Title:     "Commissioning Complete",
			Slug:      "commissioning-complete",
			Content:   db.TestDoc("All systems nominal."),
			Published: true,
		})
		if err != nil {
			t.Fatalf("CreateNews: %v", err)
		}
		if created.PublishedAt == nil {
			t.Fatal("published_at not stamped on published create")
		}
	})

	t.Run("LeavesDraftsUnstamped", func(t *testing.T) {
		created, err := manager.CreateNews(ctx, &db.NewsArticle{
			Title:   "Work In Progress",
			Slug:    "work-in-progress",
			Content: db.TestDoc("tbd"),
		})
		if err != nil {
			t.Fatalf("CreateNews: %v", err)
		}
		if created.PublishedAt != nil {
			t.Fatal("draft should not carry published_at")
		}
	})
}

func TestManager_UpdateNews_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("FirstPublishStampsPublishedAt", func(t *testing.T) {
		draft, err := manager.NewsBySlug(ctx, "draft-trade-show-recap")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if draft == nil || draft.PublishedAt != nil {
			t.Fatalf("fixture draft missing or already published: %+v", draft)
		}

		updated, err := manager.UpdateNews(ctx, &db.NewsArticle{
			ID:        draft.ID,
			Published: true,
		}, []string{"published"})
		if err != nil {
			t.Fatalf("UpdateNews: %v", err)
		}
		if !updated.Published {
			t.Fatal("article not published")
		}
		if updated.PublishedAt == nil {
			t.Fatal("published_at not stamped on first publish")
		}
	})

	t.Run("RepublishKeepsOriginalPublishedAt", func(t *testing.T) {
		article, err := manager.NewsBySlug(ctx, "new-hydraulic-test-stand")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if article == nil || article.PublishedAt == nil {
			t.Fatal("fixture article should be published")
		}
		originalStamp := *article.PublishedAt

		updated, err := manager.UpdateNews(ctx, &db.NewsArticle{
			ID:        article.ID,
			Published: true,
		}, []string{"published"})
		if err != nil {
			t.Fatalf("UpdateNews: %v", err)
		}
		if updated.PublishedAt == nil || !updated.PublishedAt.Equal(originalStamp) {
			t.Fatalf("published_at changed on republish: %v != %v", updated.PublishedAt, originalStamp)
		}
	})

	t.Run("ExplicitPublishedAtWins", func(t *testing.T) {
		article, err := manager.NewsBySlug(ctx, "fluid-conditioning-expanded")
		if err != nil {
			t.Fatalf("NewsBySlug: %v", err)
		}
		if article == nil {
			t.Fatal("fixture article missing")
		}

		want := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		updated, err := manager.UpdateNews(ctx, &db.NewsArticle{
			ID:          article.ID,
			Published:   true,
			PublishedAt: &want,
		}, []string{"published", "published_at"})
		if err != nil {
			t.Fatalf("UpdateNews: %v", err)
		}
		if updated.PublishedAt == nil || !updated.PublishedAt.Equal(want) {
			t.Fatalf("explicit published_at not honored: %v", updated.PublishedAt)
		}
	})

	t.Run("MissingIDReturnsNotFound", func(t *testing.T) {
		_, err := manager.UpdateNews(ctx, &db.NewsArticle{
			ID:    "00000000-0000-0000-0000-000000000000",
			Title: "ghost",
		}, []string{"title"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got: %v", err)
		}
	})
}

func TestManager_DeleteNews_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	// Deleting an id that never existed must not error.
	if err := manager.DeleteNews(ctx, "00000000-0000-0000-0000-000000000000"); err != nil {
		t.Fatalf("DeleteNews on absent id: %v", err)
	}
}

func TestManager_Jobs_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("CreateValidatesRequiredFields", func(t *testing.T) {
		cases := []struct {
			name  string
			job   db.JobPosting
			field string
		}{
			{"MissingTitle", db.JobPosting{Slug: "x", Location: "x", EmploymentType: db.EmploymentFullTime, Description: db.TestDoc("x")}, "title"},
			{"MissingSlug", db.JobPosting{Title: "x", Location: "x", EmploymentType: db.EmploymentFullTime, Description: db.TestDoc("x")}, "slug"},
			{"MissingLocation", db.JobPosting{Title: "x", Slug: "x", EmploymentType: db.EmploymentFullTime, Description: db.TestDoc("x")}, "location"},
			{"BadEmploymentType", db.JobPosting{Title: "x", Slug: "x", Location: "x", EmploymentType: "Gig", Description: db.TestDoc("x")}, "employment_type"},
			{"MissingDescription", db.JobPosting{Title: "x", Slug: "x", Location: "x", EmploymentType: db.EmploymentFullTime}, "description"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := manager.CreateJob(ctx, &tc.job)
				assertValidationError(t, err, tc.field)
			})
		}
	})

	t.Run("UpdateValidatesEmploymentTypeOnlyWhenPresent", func(t *testing.T) {
		job, err := manager.JobBySlug(ctx, "shop-technician")
		if err != nil {
			t.Fatalf("JobBySlug: %v", err)
		}
		if job == nil {
			t.Fatal("fixture job missing")
		}

		_, err = manager.UpdateJob(ctx, &db.JobPosting{
			ID:             job.ID,
			EmploymentType: "Gig",
		}, []string{"employment_type"})
		assertValidationError(t, err, "employment_type")

		// Zero-value employment type passes when the column is untouched.
		updated, err := manager.UpdateJob(ctx, &db.JobPosting{
			ID:    job.ID,
			Title: "Senior Shop Technician",
		}, []string{"title"})
		if err != nil {
			t.Fatalf("UpdateJob: %v", err)
		}
		if updated.Title != "Senior Shop Technician" {
			t.Fatalf("title not updated: %q", updated.Title)
		}
		if updated.EmploymentType != db.EmploymentFullTime {
			t.Fatalf("employment type changed unexpectedly: %q", updated.EmploymentType)
		}
	})
}

func TestManager_Resources_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("CreateValidatesRequiredFields", func(t *testing.T) {
		_, err := manager.CreateResource(ctx, &db.Resource{FileURL: "https://storage.test/x.pdf"})
		assertValidationError(t, err, "title")

		_, err = manager.CreateResource(ctx, &db.Resource{Title: "x"})
		assertValidationError(t, err, "file_url")
	})

	t.Run("CreateReturnsJoinedCategory", func(t *testing.T) {
		category, err := manager.db.CategoryBySlug(ctx, "brochures")
		if err != nil {
			t.Fatalf("CategoryBySlug: %v", err)
		}
		if category == nil {
			t.Fatal("fixture category missing")
		}

		created, err := manager.CreateResource(ctx, &db.Resource{
			Title:      "Cylinder Repair Overview",
			CategoryID: &category.ID,
			FileURL:    "https://storage.test/resources/cylinder-repair.pdf",
		})
		if err != nil {
			t.Fatalf("CreateResource: %v", err)
		}
		if created.Category == nil || created.Category.Slug != "brochures" {
			t.Fatalf("category not joined on create response: %+v", created.Category)
		}
	})

	t.Run("IncrementDownloadIgnoresAbsentID", func(t *testing.T) {
		if err := manager.IncrementDownload(ctx, "00000000-0000-0000-0000-000000000000"); err != nil {
			t.Fatalf("IncrementDownload on absent id: %v", err)
		}
	})
}

func TestManager_Categories_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	t.Run("CreateValidatesRequiredFields", func(t *testing.T) {
		_, err := manager.CreateCategory(ctx, &db.ResourceCategory{Slug: "x"})
		assertValidationError(t, err, "name")

		_, err = manager.CreateCategory(ctx, &db.ResourceCategory{Name: "x"})
		assertValidationError(t, err, "slug")
	})

	t.Run("UpdateMissingIDReturnsNotFound", func(t *testing.T) {
		_, err := manager.UpdateCategory(ctx, &db.ResourceCategory{
			ID:   "00000000-0000-0000-0000-000000000000",
			Name: "ghost",
		}, []string{"name"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got: %v", err)
		}
	})
}

// Stats fans its count queries out over the connection pool, so it runs
// against the shared database rather than a single-connection transaction.
func TestManager_Stats_Integration(t *testing.T) {
	ctx := context.Background()

	stats, err := testManager.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.NewsCount < 3 {
		t.Fatalf("expected at least 3 news articles counted, got %d", stats.NewsCount)
	}
	if stats.PublishedNewsCount >= stats.NewsCount {
		t.Fatalf("published news (%d) should be below total (%d)", stats.PublishedNewsCount, stats.NewsCount)
	}
	if stats.JobsCount < 3 {
		t.Fatalf("expected at least 3 jobs counted, got %d", stats.JobsCount)
	}
	if stats.ActiveJobsCount >= stats.JobsCount {
		t.Fatalf("active jobs (%d) should be below total (%d)", stats.ActiveJobsCount, stats.JobsCount)
	}
	if stats.ResourcesCount < 3 {
		t.Fatalf("expected at least 3 resources counted, got %d", stats.ResourcesCount)
	}
}

func TestManager_AdminByEmail_Integration(t *testing.T) {
	ctx, manager := withTx(t)

	admin, err := manager.AdminByEmail(ctx, db.TestAdminEmail)
	if err != nil {
		t.Fatalf("AdminByEmail: %v", err)
	}
	if admin == nil {
		t.Fatal("bootstrap admin missing")
	}

	missing, err := manager.AdminByEmail(ctx, "nobody@oilquip.test")
	if err != nil {
		t.Fatalf("AdminByEmail missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil admin, got %+v", missing)
	}
}
