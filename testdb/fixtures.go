package testdb

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"newsportal/models"
)

func User(t testing.TB, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "x", Name: email, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

// Category inserts a category; parentID 0 makes it a root.
func Category(t testing.TB, db *gorm.DB, slug string, parentID uint, sortOrder int) *models.Category {
	t.Helper()
	c := &models.Category{Name: slug, Slug: slug, SortOrder: sortOrder}
	if parentID != 0 {
		c.ParentID = &parentID
	}
	require.NoError(t, db.Omit("Parent").Create(c).Error)
	return c
}

type ArticleOpt func(*models.Article)

func Published(a *models.Article) {
	a.Status = models.StatusPublished
	a.Published = true
}

func CreatedAt(at time.Time) ArticleOpt {
	return func(a *models.Article) { a.CreatedAt = at.UTC() }
}

func Views(n int64) ArticleOpt {
	return func(a *models.Article) { a.Views = n }
}

func Trending(a *models.Article) { a.IsTrending = true }

func Breaking(a *models.Article) { a.IsBreaking = true }

var articleSeq int

func Article(t testing.TB, db *gorm.DB, categoryID, authorID uint, opts ...ArticleOpt) *models.Article {
	t.Helper()
	articleSeq++
	a := &models.Article{
		Title:      fmt.Sprintf("Article %d", articleSeq),
		Slug:       fmt.Sprintf("article-%d", articleSeq),
		Content:    "body",
		Status:     models.StatusDraft,
		Language:   "en",
		CategoryID: categoryID,
		AuthorID:   authorID,
	}
	for _, opt := range opts {
		opt(a)
	}
	require.NoError(t, db.Omit("Category", "Author").Create(a).Error)
	return a
}

func Comment(t testing.TB, db *gorm.DB, articleID uint, status models.CommentStatus) *models.Comment {
	t.Helper()
	c := &models.Comment{
		Content:   "a comment",
		ArticleID: &articleID,
		Status:    status,
		IsSpam:    status == models.CommentSpam,
	}
	require.NoError(t, db.Omit("User").Create(c).Error)
	return c
}
