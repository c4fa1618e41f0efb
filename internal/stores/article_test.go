package stores

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

type fakeArticleAPI struct {
	mu          sync.Mutex
	pages       map[int]*models.Page[models.Article]
	article     *models.Article
	searchPage  *models.Page[models.Article]
	categories  []models.Category
	tags        []models.Tag
	popular     []models.Tag
	err         error
	lastQuery   models.ArticleQuery
	lastID      string
	lastKeyword string

	// gates, when set, holds a per-page channel that ListArticles receives
	// from before returning, so a test can control the resolution order of
	// concurrent fetches exactly.
	gates map[int]chan struct{}
}

func (f *fakeArticleAPI) ListArticles(ctx context.Context, q models.ArticleQuery) (*models.Page[models.Article], error) {
	f.mu.Lock()
	f.lastQuery = q
	f.mu.Unlock()
	if g, ok := f.gates[q.Page]; ok {
		<-g
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[q.Page], nil
}

func (f *fakeArticleAPI) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	f.lastID = id
	return f.article, f.err
}

func (f *fakeArticleAPI) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return f.article, f.err
}

func (f *fakeArticleAPI) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	return f.article, f.err
}

func (f *fakeArticleAPI) UpdateArticle(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error) {
	f.lastID = id
	return f.article, f.err
}

func (f *fakeArticleAPI) DeleteArticle(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeArticleAPI) PublishArticle(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func (f *fakeArticleAPI) SearchArticles(ctx context.Context, keyword string, p models.PageParams) (*models.Page[models.Article], error) {
	f.lastKeyword = keyword
	return f.searchPage, f.err
}

func (f *fakeArticleAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

func (f *fakeArticleAPI) ListTags(ctx context.Context) ([]models.Tag, error) {
	return f.tags, f.err
}

func (f *fakeArticleAPI) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	return f.popular, f.err
}

func articlePage(page, totalPages int, last bool, ids ...string) *models.Page[models.Article] {
	p := &models.Page[models.Article]{
		TotalElements: int64(len(ids)),
		TotalPages:    totalPages,
		Number:        page,
		Last:          last,
	}
	for _, id := range ids {
		p.Content = append(p.Content, models.Article{ID: id, Title: "title " + id})
	}
	return p
}

func TestArticleStore_FetchFirstPageReplaces(t *testing.T) {
	api := &fakeArticleAPI{pages: map[int]*models.Page[models.Article]{
		0: articlePage(0, 1, true, "a1", "a2"),
	}}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "stale"}}

	_, err := s.FetchArticles(context.Background(), models.ArticleQuery{})
	require.NoError(t, err)

	got := s.Articles()
	require.Len(t, got, 2)
	require.Equal(t, "a1", got[0].ID)
	require.False(t, s.HasMore())
	require.Equal(t, int64(2), s.Total())
}

func TestArticleStore_FetchLaterPageAppends(t *testing.T) {
	api := &fakeArticleAPI{pages: map[int]*models.Page[models.Article]{
		0: articlePage(0, 2, false, "a1", "a2"),
		1: articlePage(1, 2, true, "a3"),
	}}
	s := NewArticleStore(api, logging.NewNop())

	_, err := s.FetchArticles(context.Background(), models.ArticleQuery{})
	require.NoError(t, err)
	require.True(t, s.HasMore())

	_, err = s.FetchArticles(context.Background(), models.ArticleQuery{PageParams: models.PageParams{Page: 1}})
	require.NoError(t, err)

	got := s.Articles()
	require.Len(t, got, 3)
	require.Equal(t, "a3", got[2].ID)
	require.False(t, s.HasMore())
}

func TestArticleStore_FetchErrorLeavesCache(t *testing.T) {
	api := &fakeArticleAPI{err: errors.New("boom")}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}}

	_, err := s.FetchArticles(context.Background(), models.ArticleQuery{})
	require.Error(t, err)
	require.Len(t, s.Articles(), 1)
}

// Overlapping fetches are last-write-wins: when the page 1 request resolves
// before the page 0 request, page 0's replace semantics determine the final
// cache state.
func TestArticleStore_OverlappingFetchesLastResolvedWins(t *testing.T) {
	gates := map[int]chan struct{}{
		0: make(chan struct{}),
		1: make(chan struct{}),
	}
	api := &fakeArticleAPI{
		gates: gates,
		pages: map[int]*models.Page[models.Article]{
			0: articlePage(0, 2, false, "a1", "a2"),
			1: articlePage(1, 2, true, "a3"),
		},
	}
	s := NewArticleStore(api, logging.NewNop())

	var wg sync.WaitGroup
	wg.Add(2)
	done := make(chan int, 2)
	go func() {
		defer wg.Done()
		_, err := s.FetchArticles(context.Background(), models.ArticleQuery{PageParams: models.PageParams{Page: 1}})
		require.NoError(t, err)
		done <- 1
	}()
	go func() {
		defer wg.Done()
		_, err := s.FetchArticles(context.Background(), models.ArticleQuery{})
		require.NoError(t, err)
		done <- 0
	}()

	// Release page 1 first, then page 0, so the earlier request resolves
	// after the later one.
	close(gates[1])
	require.Equal(t, 1, <-done)
	close(gates[0])
	require.Equal(t, 0, <-done)
	wg.Wait()

	got := s.Articles()
	require.Len(t, got, 2)
	require.Equal(t, "a1", got[0].ID)
	require.True(t, s.HasMore())
}

func TestArticleStore_CreatePrepends(t *testing.T) {
	api := &fakeArticleAPI{article: &models.Article{ID: "new"}}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}}
	s.total = 1

	a, err := s.CreateArticle(context.Background(), models.CreateArticleRequest{Title: "t"})
	require.NoError(t, err)
	require.Equal(t, "new", a.ID)

	got := s.Articles()
	require.Len(t, got, 2)
	require.Equal(t, "new", got[0].ID)
	require.Equal(t, int64(2), s.Total())
}

func TestArticleStore_UpdateReplacesItemAndCurrent(t *testing.T) {
	api := &fakeArticleAPI{article: &models.Article{ID: "a1", Title: "updated"}}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1", Title: "old"}, {ID: "a2"}}
	s.current = &models.Article{ID: "a1", Title: "old"}

	_, err := s.UpdateArticle(context.Background(), "a1", models.UpdateArticleRequest{})
	require.NoError(t, err)
	require.Equal(t, "updated", s.Articles()[0].Title)
	require.Equal(t, "updated", s.Current().Title)
}

func TestArticleStore_UpdateCacheMissIsNoop(t *testing.T) {
	api := &fakeArticleAPI{article: &models.Article{ID: "other", Title: "updated"}}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1", Title: "old"}}

	_, err := s.UpdateArticle(context.Background(), "other", models.UpdateArticleRequest{})
	require.NoError(t, err)
	require.Equal(t, "old", s.Articles()[0].Title)
}

func TestArticleStore_DeleteRemovesAndDecrements(t *testing.T) {
	api := &fakeArticleAPI{}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}, {ID: "a2"}}
	s.current = &models.Article{ID: "a1"}
	s.total = 2

	require.NoError(t, s.DeleteArticle(context.Background(), "a1"))
	require.Len(t, s.Articles(), 1)
	require.Equal(t, int64(1), s.Total())
	require.Nil(t, s.Current())
}

func TestArticleStore_DeleteErrorLeavesCache(t *testing.T) {
	api := &fakeArticleAPI{err: errors.New("boom")}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}}
	s.total = 1

	require.Error(t, s.DeleteArticle(context.Background(), "a1"))
	require.Len(t, s.Articles(), 1)
	require.Equal(t, int64(1), s.Total())
}

func TestArticleStore_PublishPatchesStatusInPlace(t *testing.T) {
	api := &fakeArticleAPI{}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1", Status: models.ArticleStatusDraft}}
	s.current = &models.Article{ID: "a1", Status: models.ArticleStatusDraft}

	require.NoError(t, s.PublishArticle(context.Background(), "a1"))
	require.Equal(t, models.ArticleStatusPublished, s.Articles()[0].Status)
	require.Equal(t, models.ArticleStatusPublished, s.Current().Status)
}

func TestArticleStore_SearchReplaces(t *testing.T) {
	api := &fakeArticleAPI{searchPage: articlePage(0, 1, true, "s1")}
	s := NewArticleStore(api, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}, {ID: "a2"}}

	_, err := s.SearchArticles(context.Background(), "golang", models.PageParams{})
	require.NoError(t, err)
	require.Equal(t, "golang", api.lastKeyword)

	got := s.Articles()
	require.Len(t, got, 1)
	require.Equal(t, "s1", got[0].ID)
}

func TestArticleStore_FetchTaxonomies(t *testing.T) {
	api := &fakeArticleAPI{
		categories: []models.Category{{ID: 1, Name: "tech"}},
		tags:       []models.Tag{{ID: 1, Name: "go"}},
		popular:    []models.Tag{{ID: 1, Name: "go"}},
	}
	s := NewArticleStore(api, logging.NewNop())

	require.NoError(t, s.FetchCategories(context.Background()))
	require.NoError(t, s.FetchTags(context.Background()))
	require.NoError(t, s.FetchPopularTags(context.Background(), 10))
	require.Len(t, s.Categories(), 1)
	require.Len(t, s.Tags(), 1)
	require.Len(t, s.PopularTagList(), 1)
}

func TestArticleStore_Clear(t *testing.T) {
	s := NewArticleStore(&fakeArticleAPI{}, logging.NewNop())
	s.articles = []models.Article{{ID: "a1"}}
	s.current = &models.Article{ID: "a1"}
	s.total = 1
	s.hasMore = false

	s.Clear()
	require.Empty(t, s.Articles())
	require.Nil(t, s.Current())
	require.Equal(t, int64(0), s.Total())
	require.True(t, s.HasMore())
}
