package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/router"
)

func (a *App) Notifications(ctx context.Context) error {
	if !a.navigate(ctx, router.RouteNotifications) {
		return nil
	}

	if err := a.notifications.FetchUnreadCount(ctx); err != nil {
		return err
	}
	if _, err := a.notifications.FetchNotifications(ctx, models.PageParams{Size: 20}); err != nil {
		return err
	}

	for _, n := range a.notifications.Notifications() {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %d  %s  %s\n", marker, n.ID, n.Title, n.CreatedAt)
	}
	fmt.Fprintf(a.out, "%d unread\n", a.notifications.UnreadCount())
	return nil
}

func (a *App) Read(ctx context.Context, arg string) error {
	if arg == "" {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return nil
	}
	if !a.navigate(ctx, router.RouteNotifications) {
		return nil
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Notification id must be a number.")
		return nil
	}

	if err := a.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d unread\n", a.notifications.UnreadCount())
	return nil
}

func (a *App) ReadAll(ctx context.Context) error {
	if !a.navigate(ctx, router.RouteNotifications) {
		return nil
	}

	if err := a.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "All notifications marked read.")
	return nil
}
