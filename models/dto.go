package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	NameHi      string `json:"nameHi" binding:"max=120"`
	Slug        string `json:"slug" binding:"max=160"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Icon        string `json:"icon"`
	Color       string `json:"color" binding:"max=32"`
	SortOrder   int    `json:"sortOrder"`
	ParentID    *uint  `json:"parentId"`
}

type ArticleRequest struct {
	Title            string        `json:"title" binding:"required,min=1,max=255"`
	Slug             string        `json:"slug" binding:"max=255"`
	Content          string        `json:"content" binding:"required"`
	ShortDescription string        `json:"shortDescription"`
	Image            string        `json:"image"`
	VideoURL         string        `json:"videoUrl"`
	Status           ArticleStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	Language         string        `json:"language" binding:"omitempty,oneof=en hi"`
	IsFeatured       bool          `json:"isFeatured"`
	IsTrending       bool          `json:"isTrending"`
	IsBreaking       bool          `json:"isBreaking"`
	CategoryID       uint          `json:"categoryId" binding:"required"`
	Tags             []string      `json:"tags"`
}

type ArticleListParams struct {
	Category string        `form:"category"`
	Tag      string        `form:"tag"`
	Search   string        `form:"search"`
	Language string        `form:"language"`
	Status   ArticleStatus `form:"status"`
	Featured *bool         `form:"featured"`
	Trending *bool         `form:"trending"`
	Breaking *bool         `form:"breaking"`
	AuthorID uint          `form:"authorId"`
	Page     int           `form:"page,default=1"`
	Limit    int           `form:"limit,default=10"`

	// Set by the service, not bound from the query string.
	CategoryID    uint `form:"-"`
	PublishedOnly bool `form:"-"`
}

type BlogRequest struct {
	Title    string        `json:"title" binding:"required,min=1,max=255"`
	Slug     string        `json:"slug" binding:"max=255"`
	Content  string        `json:"content" binding:"required"`
	Excerpt  string        `json:"excerpt"`
	Image    string        `json:"image"`
	Status   ArticleStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	Language string        `json:"language" binding:"omitempty,oneof=en hi"`
}

type BlogListParams struct {
	Language      string `form:"language"`
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=10"`
	PublishedOnly bool   `form:"-"`
}

// CommentRequest is validated by the moderation service so a missing
// content or target is reported as a validation error, not a bind error.
type CommentRequest struct {
	Content   string `json:"content"`
	ArticleID *uint  `json:"articleId"`
	BlogID    *uint  `json:"blogId"`
	Name      string `json:"name" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type CommentListParams struct {
	Status CommentStatus `form:"status"`
	Page   int           `form:"page,default=1"`
	Limit  int           `form:"limit,default=20"`
}

type RejectCommentRequest struct {
	Reason *string `json:"reason"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" binding:"required"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}
