// Package policy is the single role × resource × action table behind every
// admin route.
package policy

import "newsportal/models"

type Resource string

const (
	Categories Resource = "categories"
	Articles   Resource = "articles"
	Blogs      Resource = "blogs"
	Comments   Resource = "comments"
	Stats      Resource = "stats"
	Users      Resource = "users"
)

type Action string

const (
	Read     Action = "read"
	Create   Action = "create"
	Update   Action = "update"
	Delete   Action = "delete"
	Moderate Action = "moderate"
)

type rule struct {
	resource Resource
	action   Action
}

var (
	adminOnly = []models.UserRole{models.RoleAdmin}
	staff     = []models.UserRole{models.RoleAdmin, models.RoleEditor}
)

// table lists the roles allowed for each resource and action. Pairs that
// are absent are denied for everyone.
var table = map[rule][]models.UserRole{
	{Categories, Read}:   adminOnly,
	{Categories, Create}: adminOnly,
	{Categories, Update}: adminOnly,
	{Categories, Delete}: adminOnly,

	{Articles, Read}:   staff,
	{Articles, Create}: staff,
	{Articles, Update}: staff,
	{Articles, Delete}: adminOnly,

	{Blogs, Read}:   staff,
	{Blogs, Create}: staff,
	{Blogs, Update}: staff,
	{Blogs, Delete}: adminOnly,

	{Comments, Read}:     staff,
	{Comments, Delete}:   staff,
	{Comments, Moderate}: staff,

	{Stats, Read}: staff,

	{Users, Read}:   adminOnly,
	{Users, Update}: adminOnly,
	{Users, Delete}: adminOnly,
}

// Allowed reports whether role may perform action on resource.
func Allowed(role models.UserRole, resource Resource, action Action) bool {
	for _, r := range table[rule{resource, action}] {
		if r == role {
			return true
		}
	}
	return false
}

// Roles returns the roles allowed for resource and action.
func Roles(resource Resource, action Action) []models.UserRole {
	allowed := table[rule{resource, action}]
	out := make([]models.UserRole, len(allowed))
	copy(out, allowed)
	return out
}
