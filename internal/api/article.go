package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

func (c *Client) ListArticles(ctx context.Context, q models.ArticleQuery) (*models.Page[models.Article], error) {
	var page models.Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/articles", q.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetArticle(ctx context.Context, id string) (*models.Article, error) {
	var a models.Article
	if err := c.do(ctx, http.MethodGet, "/articles/"+id, nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var a models.Article
	if err := c.do(ctx, http.MethodGet, "/articles/slug/"+slug, nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	var a models.Article
	if err := c.do(ctx, http.MethodPost, "/articles", nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id string, req models.UpdateArticleRequest) (*models.Article, error) {
	var a models.Article
	if err := c.do(ctx, http.MethodPut, "/articles/"+id, nil, req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+id, nil, nil, nil)
}

func (c *Client) PublishArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/articles/"+id+"/publish", nil, nil, nil)
}

func (c *Client) ArchiveArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/articles/"+id+"/archive", nil, nil, nil)
}

func (c *Client) LikeArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/articles/"+id+"/like", nil, nil, nil)
}

func (c *Client) UnlikeArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+id+"/like", nil, nil, nil)
}

func (c *Client) BookmarkArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/articles/"+id+"/bookmark", nil, nil, nil)
}

func (c *Client) UnbookmarkArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+id+"/bookmark", nil, nil, nil)
}

func (c *Client) ArticleLikeStatus(ctx context.Context, id string) (*models.LikeStatus, error) {
	var s models.LikeStatus
	if err := c.do(ctx, http.MethodGet, "/articles/"+id+"/like-status", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) MyArticles(ctx context.Context, p models.PageParams) (*models.Page[models.Article], error) {
	var page models.Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/articles/my", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) BookmarkedArticles(ctx context.Context, p models.PageParams) (*models.Page[models.Article], error) {
	var page models.Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/articles/bookmarked", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) SearchArticles(ctx context.Context, keyword string, p models.PageParams) (*models.Page[models.Article], error) {
	q := p.Query()
	q.Set("keyword", keyword)
	var page models.Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/articles/search", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) CreateCategory(ctx context.Context, req models.Category) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, req models.Category) (*models.Category, error) {
	var cat models.Category
	path := fmt.Sprintf("/categories/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}

func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) PopularTags(ctx context.Context, limit int) ([]models.Tag, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/tags/popular", q, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) CreateTag(ctx context.Context, req models.Tag) (*models.Tag, error) {
	var tag models.Tag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}
