package models

import "time"

type CommentStatus string

const (
	CommentPending  CommentStatus = "PENDING"
	CommentApproved CommentStatus = "APPROVED"
	CommentRejected CommentStatus = "REJECTED"
	CommentSpam     CommentStatus = "SPAM"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected, CommentSpam:
		return true
	}
	return false
}

// GuestDisplayName is shown for comments that carry neither a user nor a name.
const GuestDisplayName = "Guest User"

// Comment targets exactly one of an article or a blog. Guest comments have
// no UserID and are identified only by the free-text Name/Email.
type Comment struct {
	ID              uint          `json:"id" gorm:"primarykey"`
	Content         string        `json:"content" gorm:"type:text;not null"`
	ArticleID       *uint         `json:"articleId" gorm:"index"`
	BlogID          *uint         `json:"blogId" gorm:"index"`
	UserID          *uint         `json:"userId" gorm:"index"`
	User            *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Status          CommentStatus `json:"status" gorm:"type:varchar(16);not null;default:'PENDING';index"`
	IsSpam          bool          `json:"isSpam" gorm:"not null;default:false"`
	RejectionReason *string       `json:"rejectionReason"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	DisplayName string `json:"displayName,omitempty" gorm:"-"`
}

// AuthorName resolves the name to render: the linked user, the guest name,
// or GuestDisplayName.
func (c Comment) AuthorName() string {
	if c.User != nil && c.User.Name != "" {
		return c.User.Name
	}
	if c.Name != "" {
		return c.Name
	}
	return GuestDisplayName
}
