package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/apikit/internal/model"
	"github.com/maxviazov/apikit/internal/repository"
	"github.com/maxviazov/apikit/pkg/failure"
	"github.com/maxviazov/apikit/pkg/pagination"
)

// articleService holds article use-case logic: validation + orchestration,
// no transport or SQL details.
type articleService struct {
	repo repository.ArticleRepository
	tx   repository.TxManager
	log  zerolog.Logger
}

func NewArticleService(repo repository.ArticleRepository, tx repository.TxManager, logger zerolog.Logger) ArticleService {
	l := logger.With().Str("module", "service").Str("component", "article").Logger()
	return &articleService{repo: repo, tx: tx, log: l}
}

func (s *articleService) CreateArticle(ctx context.Context, title, author, body string) (model.Article, error) {
	start := time.Now()
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)

	var ferrs []failure.FieldError
	if title == "" {
		ferrs = append(ferrs, failure.FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln < 2 || ln > 200 {
		ferrs = append(ferrs, failure.FieldError{Field: "title", Message: "length must be between 2 and 200"})
	}
	if author == "" {
		ferrs = append(ferrs, failure.FieldError{Field: "author", Message: "must not be empty"})
	}
	if len(ferrs) > 0 {
		s.log.Debug().Interface("field_errors", ferrs).Msg("article validation failed")
		return model.Article{}, failure.Validation("one or more fields are invalid", ferrs)
	}

	out, err := s.repo.Create(ctx, model.Article{Title: title, Author: author, Body: body})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("title", title).Msg("create article failed")
		return model.Article{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("article_id", out.ID).Msg("article created")
	return out, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	if id <= 0 {
		return model.Article{}, failure.Validation("one or more fields are invalid",
			[]failure.FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

// ListArticles counts first, then slices one page. Both queries run inside
// one transaction so the pagination metadata and the page see the same
// snapshot. The paginator clamps and normalizes whatever the transport layer
// passed in.
func (s *articleService) ListArticles(ctx context.Context, params ListParams) (ArticleList, error) {
	var out ArticleList
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		total, err := s.repo.Count(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("count articles failed")
			return err
		}

		pg := pagination.New(params.Page, params.PageSize, total, params.OrderBy, params.OrderDir)
		res, err := s.repo.List(ctx, repository.Query{
			Skip:     pg.Skip(),
			Take:     pg.Take(),
			OrderBy:  pg.OrderBy(),
			OrderDir: pg.OrderDir(),
		})
		if err != nil {
			s.log.Error().Err(err).Int("skip", pg.Skip()).Int("take", pg.Take()).Msg("list articles failed")
			return err
		}
		out = ArticleList{Items: res.Items, Meta: pg.Metadata()}
		return nil
	})
	if err != nil {
		return ArticleList{}, err
	}
	return out, nil
}
