// Package router holds the navigation route table and the access guard that
// decides whether a navigation proceeds, waits for the session to resolve, or
// redirects.
package router

// Route describes one navigable destination and its access requirements.
type Route struct {
	Name          string
	Path          string
	Title         string
	RequiresAuth  bool
	RequiresAdmin bool
}

const (
	RouteHome          = "home"
	RouteArticles      = "articles"
	RouteArticleDetail = "article-detail"
	RouteSearch        = "search"
	RouteUserProfile   = "user-profile"
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteNotFound      = "not-found"

	RouteWrite         = "write"
	RouteEdit          = "edit"
	RouteSettings      = "settings"
	RouteNotifications = "notifications"
	RouteBookmarks     = "bookmarks"

	RouteAdminDashboard  = "admin-dashboard"
	RouteAdminArticles   = "admin-articles"
	RouteAdminUsers      = "admin-users"
	RouteAdminComments   = "admin-comments"
	RouteAdminCategories = "admin-categories"
	RouteAdminTags       = "admin-tags"
)

var routes = []Route{
	{Name: RouteHome, Path: "/", Title: "Home"},
	{Name: RouteArticles, Path: "/articles", Title: "Articles"},
	{Name: RouteArticleDetail, Path: "/articles/:id", Title: "Article"},
	{Name: RouteSearch, Path: "/search", Title: "Search"},
	{Name: RouteUserProfile, Path: "/users/:id", Title: "Profile"},
	{Name: RouteLogin, Path: "/login", Title: "Sign In"},
	{Name: RouteRegister, Path: "/register", Title: "Sign Up"},
	{Name: RouteNotFound, Path: "/404", Title: "Not Found"},

	{Name: RouteWrite, Path: "/write", Title: "Write", RequiresAuth: true},
	{Name: RouteEdit, Path: "/articles/:id/edit", Title: "Edit", RequiresAuth: true},
	{Name: RouteSettings, Path: "/settings", Title: "Settings", RequiresAuth: true},
	{Name: RouteNotifications, Path: "/notifications", Title: "Notifications", RequiresAuth: true},
	{Name: RouteBookmarks, Path: "/bookmarks", Title: "Bookmarks", RequiresAuth: true},

	{Name: RouteAdminDashboard, Path: "/admin", Title: "Dashboard", RequiresAuth: true, RequiresAdmin: true},
	{Name: RouteAdminArticles, Path: "/admin/articles", Title: "Manage Articles", RequiresAuth: true, RequiresAdmin: true},
	{Name: RouteAdminUsers, Path: "/admin/users", Title: "Manage Users", RequiresAuth: true, RequiresAdmin: true},
	{Name: RouteAdminComments, Path: "/admin/comments", Title: "Manage Comments", RequiresAuth: true, RequiresAdmin: true},
	{Name: RouteAdminCategories, Path: "/admin/categories", Title: "Manage Categories", RequiresAuth: true, RequiresAdmin: true},
	{Name: RouteAdminTags, Path: "/admin/tags", Title: "Manage Tags", RequiresAuth: true, RequiresAdmin: true},
}

// Lookup returns the route with the given name, or the not-found route when
// no such name is registered.
func Lookup(name string) Route {
	for _, r := range routes {
		if r.Name == name {
			return r
		}
	}
	return Lookup(RouteNotFound)
}

// Routes returns a copy of the full route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
