package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentAuthorName(t *testing.T) {
	tests := []struct {
		name    string
		comment Comment
		want    string
	}{
		{"linked user wins", Comment{User: &User{Name: "Asha"}, Name: "typed"}, "Asha"},
		{"guest name", Comment{Name: "Ravi"}, "Ravi"},
		{"user without name falls back", Comment{User: &User{}, Name: "Ravi"}, "Ravi"},
		{"anonymous", Comment{}, GuestDisplayName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.comment.AuthorName())
		})
	}
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, RoleEditor.Valid())
	assert.False(t, UserRole("admin").Valid())

	assert.True(t, CommentSpam.Valid())
	assert.False(t, CommentStatus("DELETED").Valid())

	assert.True(t, StatusPublished.Valid())
	assert.False(t, ArticleStatus("ARCHIVED").Valid())
}

func TestCategoryIsRoot(t *testing.T) {
	parent := uint(1)
	assert.True(t, Category{}.IsRoot())
	assert.False(t, Category{ParentID: &parent}.IsRoot())
}

func TestTypedErrors(t *testing.T) {
	err := NewConflictError("slug %q taken", "world")
	assert.EqualError(t, err, `slug "world" taken`)

	var conflict ErrorConflict
	assert.True(t, errors.As(err, &conflict))

	var notFound ErrorNotFound
	assert.False(t, errors.As(err, &notFound))
}
