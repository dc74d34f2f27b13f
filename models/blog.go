package models

import "time"

type Blog struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	Title     string        `json:"title" gorm:"not null"`
	Slug      string        `json:"slug" gorm:"uniqueIndex;not null"`
	Content   string        `json:"content" gorm:"type:text"`
	Excerpt   string        `json:"excerpt" gorm:"type:text"`
	Image     string        `json:"image"`
	Status    ArticleStatus `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	Language  string        `json:"language" gorm:"type:varchar(2);not null;default:'en'"`
	Views     int64         `json:"views" gorm:"not null;default:0"`
	AuthorID  uint          `json:"authorId" gorm:"not null;index"`
	Author    *User         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
