package models

// User is the backend's user representation.
type User struct {
	ID         string         `json:"id"`
	Username   string         `json:"username"`
	Email      string         `json:"email"`
	Nickname   string         `json:"nickname"`
	AvatarURL  string         `json:"avatarUrl"`
	Bio        string         `json:"bio"`
	Roles      []string       `json:"roles"`
	Status     string         `json:"status"`
	CreatedAt  string         `json:"createdAt"`
	Statistics UserStatistics `json:"statistics"`
}

type UserStatistics struct {
	ArticleCount   int64 `json:"articleCount"`
	CommentCount   int64 `json:"commentCount"`
	LikeCount      int64 `json:"likeCount"`
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	User      User   `json:"user"`
}

// ProfileUpdate is a partial user update; empty fields are left unchanged.
type ProfileUpdate struct {
	Nickname  string `json:"nickname,omitempty"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Email     string `json:"email,omitempty"`
}
