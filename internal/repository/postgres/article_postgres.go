package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/apikit/internal/model"
	"github.com/maxviazov/apikit/internal/repository"
)

// orderColumns whitelists sortable columns. Anything else falls back to id,
// so normalized-but-unknown order fields can never reach the SQL text.
var orderColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"author":     "author",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type articleRepository struct{ pool *pgxpool.Pool }

func NewArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepository{pool: pool}
}

func (r *articleRepository) Create(ctx context.Context, a model.Article) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO articles (title, author, body) VALUES ($1, $2, $3)
		 RETURNING id, title, author, body, created_at, updated_at`,
		a.Title, a.Author, a.Body,
	)
	var out model.Article
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.Body, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, title, author, body, created_at, updated_at FROM articles WHERE id = $1`, id,
	)
	var out model.Article
	if err := row.Scan(&out.ID, &out.Title, &out.Author, &out.Body, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, repository.ErrNotFound
		}
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) List(ctx context.Context, p repository.Query) (repository.PageResult[model.Article], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Article]{}, err
	}
	column, ok := orderColumns[p.OrderBy]
	if !ok {
		column = "id"
	}
	dir := "ASC"
	if p.OrderDir == "desc" {
		dir = "DESC"
	}
	take := p.Take
	if take < 1 {
		take = 1
	}
	skip := p.Skip
	if skip < 0 {
		skip = 0
	}
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		fmt.Sprintf(
			`SELECT id, title, author, body, created_at, updated_at, COUNT(*) OVER() AS total
			 FROM articles
			 ORDER BY %s %s
			 LIMIT $1 OFFSET $2`, column, dir),
		take, skip,
	)
	if err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Article]{Items: make([]model.Article, 0, take)}
	for rows.Next() {
		var a model.Article
		var total int
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &a.Body, &a.CreatedAt, &a.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, a)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	return res, nil
}

// Count returns the total number of articles. Listing callers use it to
// build pagination metadata before slicing a page.
func (r *articleRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}
