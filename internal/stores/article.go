// Package stores contains in-memory caches of the latest fetched collections
// for one resource type each, patched locally after writes so the UI reflects
// a mutation without a full re-fetch. Caches are derived, disposable views:
// never the source of truth, always rebuildable from the backend.
package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// ArticleAPI is the slice of the transport client the article store needs.
type ArticleAPI interface {
	ListArticles(ctx context.Context, q models.ArticleQuery) (*models.Page[models.Article], error)
	GetArticle(ctx context.Context, id string) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	PublishArticle(ctx context.Context, id string) error
	SearchArticles(ctx context.Context, keyword string, p models.PageParams) (*models.Page[models.Article], error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	PopularTags(ctx context.Context, limit int) ([]models.Tag, error)
}

type ArticleStore struct {
	api ArticleAPI
	log logging.Logger

	mu          sync.Mutex
	articles    []models.Article
	current     *models.Article
	categories  []models.Category
	tags        []models.Tag
	popularTags []models.Tag
	total       int64
	hasMore     bool
}

func NewArticleStore(api ArticleAPI, log logging.Logger) *ArticleStore {
	return &ArticleStore{api: api, log: log, hasMore: true}
}

// FetchArticles loads one page. Page 0 (or unset) replaces the cached list;
// later pages append for infinite-scroll accumulation. Overlapping fetches
// are not deduplicated or cancelled: the last response to resolve wins.
func (s *ArticleStore) FetchArticles(ctx context.Context, q models.ArticleQuery) (*models.Page[models.Article], error) {
	page, err := s.api.ListArticles(ctx, q)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if q.Page == 0 {
		s.articles = slices.Clone(page.Content)
	} else {
		s.articles = append(s.articles, page.Content...)
	}
	s.total = page.TotalElements
	s.hasMore = !page.Last
	s.mu.Unlock()

	return page, nil
}

func (s *ArticleStore) FetchArticle(ctx context.Context, id string) (*models.Article, error) {
	a, err := s.api.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = a
	s.mu.Unlock()
	return a, nil
}

func (s *ArticleStore) FetchArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	a, err := s.api.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = a
	s.mu.Unlock()
	return a, nil
}

// CreateArticle prepends the created article and bumps the total without
// re-fetching the list.
func (s *ArticleStore) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	a, err := s.api.CreateArticle(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.articles = append([]models.Article{*a}, s.articles...)
	s.total++
	s.mu.Unlock()

	return a, nil
}

// UpdateArticle replaces the matching cached item and the current article if
// it matches; a cache miss is a no-op.
func (s *ArticleStore) UpdateArticle(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error) {
	a, err := s.api.UpdateArticle(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if i := slices.IndexFunc(s.articles, func(x models.Article) bool { return x.ID == id }); i >= 0 {
		s.articles[i] = *a
	}
	if s.current != nil && s.current.ID == id {
		s.current = a
	}
	s.mu.Unlock()

	return a, nil
}

// DeleteArticle removes the matching cached item, decrements the total, and
// clears the current article if it matches.
func (s *ArticleStore) DeleteArticle(ctx context.Context, id string) error {
	if err := s.api.DeleteArticle(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.articles = slices.DeleteFunc(s.articles, func(x models.Article) bool { return x.ID == id })
	s.total--
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()

	return nil
}

// PublishArticle flips the cached status in place rather than replacing the
// item.
func (s *ArticleStore) PublishArticle(ctx context.Context, id string) error {
	if err := s.api.PublishArticle(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if i := slices.IndexFunc(s.articles, func(x models.Article) bool { return x.ID == id }); i >= 0 {
		s.articles[i].Status = models.ArticleStatusPublished
	}
	if s.current != nil && s.current.ID == id {
		s.current.Status = models.ArticleStatusPublished
	}
	s.mu.Unlock()

	return nil
}

// SearchArticles replaces the cached list with the search result page.
func (s *ArticleStore) SearchArticles(ctx context.Context, keyword string, p models.PageParams) (*models.Page[models.Article], error) {
	page, err := s.api.SearchArticles(ctx, keyword, p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.articles = slices.Clone(page.Content)
	s.total = page.TotalElements
	s.hasMore = !page.Last
	s.mu.Unlock()

	return page, nil
}

func (s *ArticleStore) FetchCategories(ctx context.Context) error {
	cats, err := s.api.ListCategories(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch categories", "error", err)
		return err
	}
	s.mu.Lock()
	s.categories = cats
	s.mu.Unlock()
	return nil
}

func (s *ArticleStore) FetchTags(ctx context.Context) error {
	tags, err := s.api.ListTags(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch tags", "error", err)
		return err
	}
	s.mu.Lock()
	s.tags = tags
	s.mu.Unlock()
	return nil
}

func (s *ArticleStore) FetchPopularTags(ctx context.Context, limit int) error {
	tags, err := s.api.PopularTags(ctx, limit)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch popular tags", "error", err)
		return err
	}
	s.mu.Lock()
	s.popularTags = tags
	s.mu.Unlock()
	return nil
}

// Clear resets the cache to its initial state.
func (s *ArticleStore) Clear() {
	s.mu.Lock()
	s.articles = nil
	s.current = nil
	s.total = 0
	s.hasMore = true
	s.mu.Unlock()
}

func (s *ArticleStore) Articles() []models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.articles)
}

func (s *ArticleStore) Current() *models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	a := *s.current
	return &a
}

func (s *ArticleStore) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

func (s *ArticleStore) Tags() []models.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tags)
}

func (s *ArticleStore) PopularTagList() []models.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.popularTags)
}

func (s *ArticleStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *ArticleStore) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}
