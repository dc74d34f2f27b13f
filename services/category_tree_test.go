package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal/models"
)

func cat(id uint, parent uint, sortOrder int) models.Category {
	c := models.Category{ID: id, Name: "c", Slug: "c", SortOrder: sortOrder}
	if parent != 0 {
		p := parent
		c.ParentID = &p
	}
	return c
}

func nodeIDs(nodes []models.CategoryNode) []uint {
	out := []uint{}
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func TestBuildTree_RootWithChildren(t *testing.T) {
	roots, promoted := BuildTree([]models.Category{cat(1, 0, 0), cat(2, 1, 1), cat(3, 1, 2)})

	require.Len(t, roots, 1)
	assert.Empty(t, promoted)
	assert.EqualValues(t, 1, roots[0].ID)
	assert.Equal(t, []uint{2, 3}, nodeIDs(roots[0].Children))
	assert.Empty(t, roots[0].Children[0].Children)
}

func TestBuildTree_StableSortOrder(t *testing.T) {
	roots, _ := BuildTree([]models.Category{
		cat(10, 0, 1),
		cat(11, 0, 0),
		cat(12, 0, 1),
		cat(13, 11, 5),
		cat(14, 11, 5),
		cat(15, 11, 2),
	})

	assert.Equal(t, []uint{11, 10, 12}, nodeIDs(roots))
	assert.Equal(t, []uint{15, 13, 14}, nodeIDs(roots[0].Children))
}

func TestBuildTree_OrphanPromoted(t *testing.T) {
	roots, promoted := BuildTree([]models.Category{cat(1, 0, 1), cat(2, 99, 0)})

	assert.Equal(t, []uint{2, 1}, nodeIDs(roots))
	assert.Equal(t, []uint{2}, promoted)
}

func TestBuildTree_SelfParentAndCycle(t *testing.T) {
	roots, promoted := BuildTree([]models.Category{
		cat(1, 1, 0),
		cat(2, 3, 0),
		cat(3, 2, 1),
	})

	assert.ElementsMatch(t, []uint{1, 2}, promoted)
	assert.Equal(t, []uint{1, 2}, nodeIDs(roots))
	assert.Equal(t, []uint{3}, nodeIDs(roots[1].Children))
}

func TestBuildTree_EveryCategoryOnce(t *testing.T) {
	input := []models.Category{
		cat(1, 0, 0), cat(2, 1, 0), cat(3, 2, 0), cat(4, 0, 1), cat(5, 4, 0), cat(6, 42, 0),
	}
	roots, _ := BuildTree(input)

	seen := map[uint]int{}
	var walk func([]models.CategoryNode)
	walk = func(nodes []models.CategoryNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Children)
		}
	}
	walk(roots)

	require.Len(t, seen, len(input))
	for id, n := range seen {
		assert.Equal(t, 1, n, "category %d", id)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	roots, promoted := BuildTree(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
	assert.Empty(t, promoted)
}

func TestArticlesForCategory(t *testing.T) {
	parent := cat(1, 0, 0)
	child := cat(2, 1, 0)
	other := cat(3, 0, 1)

	articles := []models.Article{
		{ID: 100, CategoryID: 1, Category: &parent},
		{ID: 101, CategoryID: 2, Category: &child},
		{ID: 102, CategoryID: 3, Category: &other},
	}

	got := ArticlesForCategory(parent, articles)
	assert.Equal(t, []uint{100, 101}, articleIDs(got))

	got = ArticlesForCategory(child, articles)
	assert.Equal(t, []uint{101}, articleIDs(got))

	got = ArticlesForCategory(cat(4, 0, 0), articles)
	assert.Empty(t, got)
}

func articleIDs(articles []models.Article) []uint {
	out := []uint{}
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}
