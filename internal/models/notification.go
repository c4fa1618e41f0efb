package models

type Notification struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	ReferenceID   string `json:"referenceId"`
	ReferenceType string `json:"referenceType"`
	IsRead        bool   `json:"isRead"`
	CreatedAt     string `json:"createdAt"`
}

// UnreadCount is the payload of the unread-count endpoint.
type UnreadCount struct {
	Count int64 `json:"count"`
}
