package models

import "time"

// Category is a node of the two-level classification tree. A category with
// a ParentID is a sub-category; its parent must itself be a root.
type Category struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"not null"`
	NameHi      string    `json:"nameHi"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	SortOrder   int       `json:"sortOrder" gorm:"not null;default:0"`
	ParentID    *uint     `json:"parentId" gorm:"index"`
	Parent      *Category `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsRoot reports whether the category sits at the top of the tree.
func (c Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category with its direct children, as rendered in
// navigation menus and the admin tree.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}
