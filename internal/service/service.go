// Package service holds business logic orchestration across repositories and
// handlers. Kept intentionally lean: use-case coordination, validation and
// failure shaping only.
package service

import (
	"context"

	"github.com/maxviazov/apikit/internal/model"
	"github.com/maxviazov/apikit/pkg/pagination"
)

// ListParams is the raw page request as it arrives from the transport layer.
// Values are normalized by the paginator, never rejected.
type ListParams struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// ArticleList couples one page of items with its pagination metadata.
type ArticleList struct {
	Items []model.Article     `json:"items"`
	Meta  pagination.Metadata `json:"meta"`
}

// ArticleService defines article-oriented use cases.
type ArticleService interface {
	CreateArticle(ctx context.Context, title, author, body string) (model.Article, error)
	GetArticle(ctx context.Context, id int64) (model.Article, error)
	ListArticles(ctx context.Context, params ListParams) (ArticleList, error)
}
