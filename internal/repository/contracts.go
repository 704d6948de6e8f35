package repository

import (
	"context"

	"github.com/maxviazov/apikit/internal/model"
)

// Pinger represents a minimal readiness probe capability, decoupling health
// checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Query carries paginator output into a listing query. OrderBy and OrderDir
// arrive already normalized; implementations must still whitelist OrderBy
// before interpolating it into SQL.
type Query struct {
	Skip     int
	Take     int
	OrderBy  string
	OrderDir string
}

// PageResult carries a slice of items and the total count matching the
// query, so clients can compute pagination without an extra round trip.
type PageResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support
// it. A single entry point keeps transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ArticleRepository declares persistence operations for articles. It returns
// domain models and surfaces the domain errors from errors.go rather than
// raw Postgres codes.
type ArticleRepository interface {
	Create(ctx context.Context, a model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int64) (model.Article, error)
	List(ctx context.Context, q Query) (PageResult[model.Article], error)
	Count(ctx context.Context) (int, error)
}
