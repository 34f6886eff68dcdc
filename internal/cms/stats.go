package cms

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Stats carries the admin dashboard counters.
type Stats struct {
	NewsCount          int `json:"news_count"`
	PublishedNewsCount int `json:"published_news_count"`
	JobsCount          int `json:"jobs_count"`
	ActiveJobsCount    int `json:"active_jobs_count"`
	ResourcesCount     int `json:"resources_count"`
}

// Stats issues the five dashboard count queries concurrently and waits for
// all of them before returning.
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.NewsCount, err = m.db.NewsCount(ctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PublishedNewsCount, err = m.db.NewsCount(ctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		stats.JobsCount, err = m.db.JobsCount(ctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ActiveJobsCount, err = m.db.JobsCount(ctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ResourcesCount, err = m.db.ResourcesCount(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}
