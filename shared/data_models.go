package shared

// Author identifies the user a post or reply belongs to.
type Author struct {
	Id    int    `json:"_id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Post struct {
	Id           int    `json:"_id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	User         Author `json:"user"`
	Views        int    `json:"views"`
	RepliesCount int    `json:"repliesCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type Reply struct {
	Id        int    `json:"_id"`
	Content   string `json:"content"`
	User      Author `json:"user"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Token struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Session is the single persisted unit of authentication state. Exactly one
// session or none exists at a time.
type Session struct {
	Id    int    `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Token Token  `json:"token"`
}

// Pagination is derived server-side. Page is 1-indexed.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}
