package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/apikit/internal/model"
	"github.com/maxviazov/apikit/internal/repository"
	"github.com/maxviazov/apikit/internal/service"
	"github.com/maxviazov/apikit/pkg/failure"
)

type fakeArticleRepo struct {
	nextID    int64
	items     map[int64]model.Article
	createErr error
	countErr  error
	lastQuery repository.Query // capture for pagination wiring tests
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{nextID: 1, items: map[int64]model.Article{}}
}

func (f *fakeArticleRepo) Create(_ context.Context, a model.Article) (model.Article, error) {
	if f.createErr != nil {
		return model.Article{}, f.createErr
	}
	a.ID = f.nextID
	f.nextID++
	f.items[a.ID] = a
	return a, nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id int64) (model.Article, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Article{}, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeArticleRepo) List(_ context.Context, q repository.Query) (repository.PageResult[model.Article], error) {
	f.lastQuery = q
	res := repository.PageResult[model.Article]{}
	for _, v := range f.items {
		res.Items = append(res.Items, v)
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakeArticleRepo) Count(_ context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.items), nil
}

var _ repository.ArticleRepository = (*fakeArticleRepo)(nil)

// fakeTxManager records invocations and runs the unit of work inline.
type fakeTxManager struct {
	calls    int
	beginErr error
}

func (m *fakeTxManager) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	m.calls++
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTxManager)(nil)

func newSvc(repo repository.ArticleRepository) service.ArticleService {
	return service.NewArticleService(repo, &fakeTxManager{}, zerolog.New(io.Discard))
}

func TestArticleService_CreateArticle_Validation(t *testing.T) {
	svc := newSvc(newFakeArticleRepo())

	cases := []struct {
		name      string
		title     string
		author    string
		wantField string
	}{
		{"empty_title", "", "ann", "title"},
		{"whitespace_title", "   ", "ann", "title"},
		{"short_title", "x", "ann", "title"},
		{"empty_author", "a decent title", "", "author"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateArticle(context.Background(), tc.title, tc.author, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, failure.ErrValidation))

			fields := failure.FieldsOf(err)
			require.Len(t, fields, 1)
			assert.Equal(t, tc.wantField, fields[0].Field)
		})
	}
}

func TestArticleService_CreateArticle_CollectsAllFieldErrors(t *testing.T) {
	svc := newSvc(newFakeArticleRepo())

	_, err := svc.CreateArticle(context.Background(), "", "", "")
	require.Error(t, err)
	assert.Len(t, failure.FieldsOf(err), 2)
}

func TestArticleService_CreateArticle_OK(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newSvc(repo)

	out, err := svc.CreateArticle(context.Background(), "  Envelope patterns  ", "ann", "body")
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "Envelope patterns", out.Title) // trimmed before persisting
}

func TestArticleService_CreateArticle_RepoErrorPassesThrough(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.createErr = repository.ErrAlreadyExists
	svc := newSvc(repo)

	_, err := svc.CreateArticle(context.Background(), "a decent title", "ann", "")
	assert.True(t, errors.Is(err, repository.ErrAlreadyExists))
}

func TestArticleService_GetArticle(t *testing.T) {
	repo := newFakeArticleRepo()
	seeded, _ := repo.Create(context.Background(), model.Article{Title: "t1", Author: "a"})
	svc := newSvc(repo)

	got, err := svc.GetArticle(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded, got)

	_, err = svc.GetArticle(context.Background(), 999)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = svc.GetArticle(context.Background(), 0)
	assert.True(t, errors.Is(err, failure.ErrValidation))
}

func TestArticleService_ListArticles_PaginatorWiring(t *testing.T) {
	repo := newFakeArticleRepo()
	for i := 0; i < 7; i++ {
		_, err := repo.Create(context.Background(), model.Article{Title: "t", Author: "a"})
		require.NoError(t, err)
	}
	svc := newSvc(repo)

	res, err := svc.ListArticles(context.Background(), service.ListParams{
		Page:     2,
		PageSize: 3,
		OrderBy:  "Title",
		OrderDir: "DESC",
	})
	require.NoError(t, err)

	// paginator output reaches the repository normalized
	assert.Equal(t, repository.Query{Skip: 3, Take: 3, OrderBy: "title", OrderDir: "desc"}, repo.lastQuery)

	assert.Equal(t, 7, res.Meta.TotalCount)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.Equal(t, 4, res.Meta.ShowingFrom)
	assert.Equal(t, 6, res.Meta.ShowingTo)
}

func TestArticleService_ListArticles_ClampsBadInput(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := newSvc(repo)

	res, err := svc.ListArticles(context.Background(), service.ListParams{Page: -1, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, repository.Query{Skip: 0, Take: 1, OrderBy: "id", OrderDir: "asc"}, repo.lastQuery)
	assert.Equal(t, 0, res.Meta.TotalPages)
	assert.Empty(t, res.Meta.Pages)
}

func TestArticleService_ListArticles_CountErrorSurfaces(t *testing.T) {
	repo := newFakeArticleRepo()
	repo.countErr = errors.New("boom")
	svc := newSvc(repo)

	_, err := svc.ListArticles(context.Background(), service.ListParams{})
	assert.Error(t, err)
}

func TestArticleService_ListArticles_RunsInsideTransaction(t *testing.T) {
	repo := newFakeArticleRepo()
	tx := &fakeTxManager{}
	svc := service.NewArticleService(repo, tx, zerolog.New(io.Discard))

	_, err := svc.ListArticles(context.Background(), service.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	// count and page share one snapshot
	assert.Equal(t, 1, tx.calls)
}

func TestArticleService_ListArticles_TxBeginErrorSurfaces(t *testing.T) {
	repo := newFakeArticleRepo()
	tx := &fakeTxManager{beginErr: errors.New("begin failed")}
	svc := service.NewArticleService(repo, tx, zerolog.New(io.Discard))

	_, err := svc.ListArticles(context.Background(), service.ListParams{})
	assert.Error(t, err)
}
