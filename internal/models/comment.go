package models

type Comment struct {
	ID           string    `json:"id"`
	ArticleID    string    `json:"articleId"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	ParentID     string    `json:"parentId"`
	Content      string    `json:"content"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"createdAt"`
	LikeCount    int64     `json:"likeCount"`
	ReplyCount   int64     `json:"replyCount"`
	Replies      []Comment `json:"replies"`
}

type CreateCommentRequest struct {
	ArticleID string `json:"articleId"`
	ParentID  string `json:"parentId,omitempty"`
	Content   string `json:"content"`
}

type ReportCommentRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}
