package services

import (
	"sort"

	"newsportal/models"
)

// BuildTree groups a flat category list into root nodes with their direct
// children. Siblings are ordered by SortOrder; equal sort orders keep their
// input order.
//
// A category whose parent is missing from the input, or whose parent chain
// never reaches a root, is promoted to a root. Its id is returned in
// promoted so the caller can report it. A child's own children are nested
// under it, so a depth violation still renders every category exactly once.
func BuildTree(categories []models.Category) (roots []models.CategoryNode, promoted []uint) {
	byID := make(map[uint]int, len(categories))
	for i, c := range categories {
		byID[c.ID] = i
	}

	children := make(map[uint][]int)
	var rootIdx []int
	for i, c := range categories {
		if c.ParentID == nil {
			rootIdx = append(rootIdx, i)
			continue
		}
		if _, ok := byID[*c.ParentID]; !ok || *c.ParentID == c.ID {
			rootIdx = append(rootIdx, i)
			promoted = append(promoted, c.ID)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], i)
	}

	bySortOrder := func(idx []int) {
		sort.SliceStable(idx, func(a, b int) bool {
			return categories[idx[a]].SortOrder < categories[idx[b]].SortOrder
		})
	}

	visited := make([]bool, len(categories))
	var build func(i int) models.CategoryNode
	build = func(i int) models.CategoryNode {
		visited[i] = true
		node := models.CategoryNode{Category: categories[i], Children: []models.CategoryNode{}}
		node.Parent = nil
		kids := children[categories[i].ID]
		bySortOrder(kids)
		for _, k := range kids {
			if !visited[k] {
				node.Children = append(node.Children, build(k))
			}
		}
		return node
	}

	bySortOrder(rootIdx)
	roots = []models.CategoryNode{}
	for _, i := range rootIdx {
		roots = append(roots, build(i))
	}

	// Whatever is still unvisited sits on a parent cycle.
	var cycle []int
	for i := range categories {
		if !visited[i] {
			cycle = append(cycle, i)
		}
	}
	bySortOrder(cycle)
	for _, i := range cycle {
		if visited[i] {
			continue
		}
		promoted = append(promoted, categories[i].ID)
		roots = append(roots, build(i))
	}

	return roots, promoted
}

// ArticlesForCategory keeps the articles filed directly under category or
// under one of its direct children. Articles must carry their Category for
// the child match.
func ArticlesForCategory(category models.Category, articles []models.Article) []models.Article {
	out := []models.Article{}
	for _, a := range articles {
		if a.CategoryID == category.ID {
			out = append(out, a)
			continue
		}
		if a.Category != nil && a.Category.ParentID != nil && *a.Category.ParentID == category.ID {
			out = append(out, a)
		}
	}
	return out
}
