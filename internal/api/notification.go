package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context, p models.PageParams) (*models.Page[models.Notification], error) {
	var page models.Page[models.Notification]
	if err := c.do(ctx, http.MethodGet, "/notifications", p.Query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) NotificationUnreadCount(ctx context.Context) (*models.UnreadCount, error) {
	var uc models.UnreadCount
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &uc); err != nil {
		return nil, err
	}
	return &uc, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}
