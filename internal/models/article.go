package models

import (
	"net/url"
	"strconv"
)

// Article statuses as reported by the backend.
const (
	ArticleStatusDraft     = "DRAFT"
	ArticleStatusPublished = "PUBLISHED"
	ArticleStatusArchived  = "ARCHIVED"
)

type Article struct {
	ID           string            `json:"id"`
	AuthorID     string            `json:"authorId"`
	AuthorName   string            `json:"authorName"`
	AuthorAvatar string            `json:"authorAvatar"`
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	Content      string            `json:"content"`
	Summary      string            `json:"summary"`
	CoverImage   string            `json:"coverImage"`
	Status       string            `json:"status"`
	PublishTime  string            `json:"publishTime"`
	CreatedAt    string            `json:"createdAt"`
	Tags         []string          `json:"tags"`
	Category     Category          `json:"category"`
	Statistics   ArticleStatistics `json:"statistics"`
}

type ArticleStatistics struct {
	ViewCount     int64 `json:"viewCount"`
	LikeCount     int64 `json:"likeCount"`
	CommentCount  int64 `json:"commentCount"`
	ShareCount    int64 `json:"shareCount"`
	BookmarkCount int64 `json:"bookmarkCount"`
}

type CreateArticleRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Summary    string   `json:"summary"`
	CoverImage string   `json:"coverImage"`
	CategoryID int64    `json:"categoryId"`
	Tags       []string `json:"tags"`
}

// UpdateArticleRequest is a partial article update.
type UpdateArticleRequest struct {
	Title      string   `json:"title,omitempty"`
	Content    string   `json:"content,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	CoverImage string   `json:"coverImage,omitempty"`
	CategoryID int64    `json:"categoryId,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// LikeStatus reports the caller's like/bookmark state for one article.
type LikeStatus struct {
	Liked      bool `json:"liked"`
	Bookmarked bool `json:"bookmarked"`
}

type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ArticleCount int64  `json:"articleCount"`
}

type Tag struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ArticleCount int64  `json:"articleCount"`
}

// ArticleQuery filters the article list in addition to pagination.
type ArticleQuery struct {
	PageParams
	Status     string
	CategoryID int64
	Tag        string
}

func (q ArticleQuery) Query() url.Values {
	v := q.PageParams.Query()
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	return v
}
