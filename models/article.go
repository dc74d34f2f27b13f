package models

import "time"

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "DRAFT"
	StatusPublished ArticleStatus = "PUBLISHED"
)

func (s ArticleStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Article struct {
	ID               uint          `json:"id" gorm:"primarykey"`
	Title            string        `json:"title" gorm:"not null"`
	Slug             string        `json:"slug" gorm:"uniqueIndex;not null"`
	Content          string        `json:"content" gorm:"type:text"`
	ShortDescription string        `json:"shortDescription" gorm:"type:text"`
	Image            string        `json:"image"`
	VideoURL         string        `json:"videoUrl"`
	Views            int64         `json:"views" gorm:"not null;default:0"`
	Status           ArticleStatus `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	Published        bool          `json:"published" gorm:"not null;default:false"`
	Language         string        `json:"language" gorm:"type:varchar(2);not null;default:'en'"`
	IsFeatured       bool          `json:"isFeatured" gorm:"not null;default:false"`
	IsTrending       bool          `json:"isTrending" gorm:"not null;default:false"`
	IsBreaking       bool          `json:"isBreaking" gorm:"not null;default:false"`
	CategoryID       uint          `json:"categoryId" gorm:"not null;index"`
	Category         *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	AuthorID         uint          `json:"authorId" gorm:"not null;index"`
	Author           *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Tags             []Tag         `json:"tags" gorm:"many2many:article_tags;"`
	PublishedAt      *time.Time    `json:"publishedAt"`
	CreatedAt        time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
