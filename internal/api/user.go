package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users/register", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/users/logout", nil, nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/users/profile", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, avatarURL string) error {
	body := map[string]string{"avatarUrl": avatarURL}
	return c.do(ctx, http.MethodPut, "/users/avatar", nil, body, nil)
}

func (c *Client) FollowUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/users/"+id+"/follow", nil, nil, nil)
}

func (c *Client) UnfollowUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id+"/follow", nil, nil, nil)
}

func (c *Client) Followers(ctx context.Context, id string, p models.PageParams) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.do(ctx, http.MethodGet, "/users/"+id+"/followers", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) Following(ctx context.Context, id string, p models.PageParams) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.do(ctx, http.MethodGet, "/users/"+id+"/following", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
