package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

func (c *Client) ArticleComments(ctx context.Context, articleID string, p models.PageParams) (*models.Page[models.Comment], error) {
	var page models.Page[models.Comment]
	if err := c.do(ctx, http.MethodGet, "/comments/article/"+articleID, p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CommentReplies(ctx context.Context, commentID string, p models.PageParams) (*models.Page[models.Comment], error) {
	var page models.Page[models.Comment]
	if err := c.do(ctx, http.MethodGet, "/comments/"+commentID+"/replies", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) CreateComment(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	var cm models.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", nil, req, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+id, nil, nil, nil)
}

func (c *Client) LikeComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/comments/"+id+"/like", nil, nil, nil)
}

func (c *Client) UnlikeComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+id+"/like", nil, nil, nil)
}

func (c *Client) ReportComment(ctx context.Context, id string, req models.ReportCommentRequest) error {
	return c.do(ctx, http.MethodPost, "/comments/"+id+"/report", nil, req, nil)
}

func (c *Client) MyComments(ctx context.Context, p models.PageParams) (*models.Page[models.Comment], error) {
	var page models.Page[models.Comment]
	if err := c.do(ctx, http.MethodGet, "/comments/my", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
