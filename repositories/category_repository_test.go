package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/models"
	"newsportal/testdb"
)

func TestCategoryRepository_ListOrdering(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	news := testdb.Category(t, db, "news", 0, 1)
	sports := testdb.Category(t, db, "sports", 0, 0)
	testdb.Category(t, db, "cricket", sports.ID, 1)
	testdb.Category(t, db, "football", sports.ID, 0)
	testdb.Category(t, db, "world", news.ID, 0)

	list, err := repo.List(ctx)
	require.NoError(t, err)

	var slugs []string
	for _, c := range list {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"sports", "news", "world", "football", "cricket"}, slugs)

	for _, c := range list {
		if c.ParentID != nil {
			require.NotNil(t, c.Parent, c.Slug)
			assert.Equal(t, *c.ParentID, c.Parent.ID)
		}
	}
}

func TestCategoryRepository_Counts(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	author := testdb.User(t, db, "a@example.com", models.RoleAdmin)
	root := testdb.Category(t, db, "root", 0, 0)
	child := testdb.Category(t, db, "child", root.ID, 0)
	testdb.Article(t, db, child.ID, author.ID)

	n, err := repo.CountChildren(ctx, root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.CountArticles(ctx, root.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	n, err = repo.CountArticles(ctx, child.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCategoryRepository_CreateDuplicateSlug(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Category{Name: "Tech", Slug: "tech"}))
	err := repo.Create(ctx, &models.Category{Name: "Tech 2", Slug: "tech"})

	var conflict models.ErrorConflict
	assert.True(t, errors.As(err, &conflict), "got %v", err)
}

func TestCategoryRepository_TransactionRollsBack(t *testing.T) {
	db := testdb.New(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	c := testdb.Category(t, db, "doomed", 0, 0)
	boom := errors.New("boom")

	err := repo.Transaction(ctx, func(tx CategoryRepository) error {
		if _, err := tx.LockByID(ctx, c.ID); err != nil {
			return err
		}
		if err := tx.Delete(ctx, c.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetByID(ctx, c.ID)
	assert.NoError(t, err)
}

func TestCategoryRepository_NotFound(t *testing.T) {
	repo := NewCategoryRepository(testdb.New(t))
	ctx := context.Background()

	_, err := repo.GetBySlug(ctx, "missing")
	var nf models.ErrorNotFound
	assert.True(t, errors.As(err, &nf))

	err = repo.Delete(ctx, 42)
	assert.True(t, errors.As(err, &nf))
}
