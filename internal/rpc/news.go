package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/oilquip/site-api/internal/cms"
)

//go:generate zenrpc

// NewsService provides read-only RPC access to news articles for embedded
// site widgets.
type NewsService struct {
	zenrpc.Service
	manager *cms.Manager
}

func NewNewsService(manager *cms.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List retrieves news summaries sorted by creation time descending.
//
//zenrpc:filter filter to published articles only
//zenrpc:return list of news summaries
//zenrpc:500 internal server error
func (s *NewsService) List(ctx context.Context, filter NewsFilter) (NewsSummaries, error) {
	articles, err := s.manager.News(ctx, filter.Published)

	return NewNewsSummaries(articles), err
}

// BySlug retrieves a single article with full rendered content.
//
//zenrpc:req request carrying the article slug
//zenrpc:return article with rendered content
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *NewsService) BySlug(ctx context.Context, req NewsBySlugRequest) (*News, error) {
	article, err := s.manager.NewsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, zenrpc.NewStringError(404, "news not found")
	}

	news := NewNews(*article)
	return &news, nil
}
