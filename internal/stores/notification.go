package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// NotificationAPI is the slice of the transport client the notification store
// needs.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, p models.PageParams) (*models.Page[models.Notification], error)
	NotificationUnreadCount(ctx context.Context) (*models.UnreadCount, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id int64) error
}

type NotificationStore struct {
	api NotificationAPI
	log logging.Logger

	mu            sync.Mutex
	notifications []models.Notification
	unreadCount   int64
	total         int64
	hasMore       bool
}

func NewNotificationStore(api NotificationAPI, log logging.Logger) *NotificationStore {
	return &NotificationStore{api: api, log: log, hasMore: true}
}

// FetchNotifications loads one page with the same page-0-replaces,
// later-pages-append accumulation as the article list.
func (s *NotificationStore) FetchNotifications(ctx context.Context, p models.PageParams) (*models.Page[models.Notification], error) {
	page, err := s.api.ListNotifications(ctx, p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if p.Page == 0 {
		s.notifications = slices.Clone(page.Content)
	} else {
		s.notifications = append(s.notifications, page.Content...)
	}
	s.total = page.TotalElements
	s.hasMore = !page.Last
	s.mu.Unlock()

	return page, nil
}

func (s *NotificationStore) FetchUnreadCount(ctx context.Context) error {
	c, err := s.api.NotificationUnreadCount(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to fetch unread count", "error", err)
		return err
	}
	s.mu.Lock()
	s.unreadCount = c.Count
	s.mu.Unlock()
	return nil
}

// MarkRead flags the cached item read and decrements the unread counter.
// Marking an already-read item again does not decrement, and the counter
// never goes below zero.
func (s *NotificationStore) MarkRead(ctx context.Context, id int64) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if i := slices.IndexFunc(s.notifications, func(n models.Notification) bool { return n.ID == id }); i >= 0 {
		if !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			if s.unreadCount > 0 {
				s.unreadCount--
			}
		}
	}
	s.mu.Unlock()

	return nil
}

// MarkAllRead flags every cached item read and zeroes the unread counter.
func (s *NotificationStore) MarkAllRead(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
	s.unreadCount = 0
	s.mu.Unlock()

	return nil
}

// Delete removes the cached item; an unread item also decrements the unread
// counter.
func (s *NotificationStore) Delete(ctx context.Context, id int64) error {
	if err := s.api.DeleteNotification(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	if i := slices.IndexFunc(s.notifications, func(n models.Notification) bool { return n.ID == id }); i >= 0 {
		if !s.notifications[i].IsRead && s.unreadCount > 0 {
			s.unreadCount--
		}
		s.notifications = slices.Delete(s.notifications, i, i+1)
		s.total--
	}
	s.mu.Unlock()

	return nil
}

func (s *NotificationStore) Clear() {
	s.mu.Lock()
	s.notifications = nil
	s.unreadCount = 0
	s.total = 0
	s.hasMore = true
	s.mu.Unlock()
}

func (s *NotificationStore) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.notifications)
}

func (s *NotificationStore) UnreadCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

func (s *NotificationStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *NotificationStore) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}
