package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"newsportal/models"
	"newsportal/repositories"
	"newsportal/testdb"
)

type ArticleServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	service  ArticleService
	ctx      context.Context
	author   *models.User
	category *models.Category
}

func (s *ArticleServiceSuite) SetupTest() {
	s.db = testdb.New(s.T())
	s.ctx = context.Background()
	s.service = NewArticleService(
		repositories.NewArticleRepository(s.db),
		repositories.NewCategoryRepository(s.db),
		repositories.NewTagRepository(s.db),
	)
	s.author = testdb.User(s.T(), s.db, "editor@example.com", models.RoleEditor)
	s.category = testdb.Category(s.T(), s.db, "politics", 0, 0)
}

func (s *ArticleServiceSuite) TestCreateDraftWithTags() {
	a, err := s.service.Create(s.ctx, models.ArticleRequest{
		Title:      "Budget Session Begins",
		Content:    "...",
		CategoryID: s.category.ID,
		Tags:       []string{"Budget", "budget", " ", "Parliament"},
	}, s.author.ID)
	s.Require().NoError(err)

	s.Equal("budget-session-begins", a.Slug)
	s.Equal(models.StatusDraft, a.Status)
	s.False(a.Published)
	s.Nil(a.PublishedAt)
	s.Equal("en", a.Language)
	s.Len(a.Tags, 2)
	s.Require().NotNil(a.Author)
	s.Equal(s.author.ID, a.Author.ID)
}

func (s *ArticleServiceSuite) TestCreateReusesTagsCaseInsensitively() {
	_, err := s.service.Create(s.ctx, models.ArticleRequest{
		Title: "One", Content: "x", CategoryID: s.category.ID, Tags: []string{"Election"},
	}, s.author.ID)
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, models.ArticleRequest{
		Title: "Two", Content: "x", CategoryID: s.category.ID, Tags: []string{"election"},
	}, s.author.ID)
	s.Require().NoError(err)

	var count int64
	s.Require().NoError(s.db.Model(&models.Tag{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *ArticleServiceSuite) TestCreateUnknownCategory() {
	_, err := s.service.Create(s.ctx, models.ArticleRequest{Title: "x", Content: "x", CategoryID: 999}, s.author.ID)
	s.IsType(models.ErrorValidation{}, err)
}

func (s *ArticleServiceSuite) TestPublishSetsPublishedAtOnce() {
	a, err := s.service.Create(s.ctx, models.ArticleRequest{
		Title: "Draft", Content: "x", CategoryID: s.category.ID,
	}, s.author.ID)
	s.Require().NoError(err)

	req := models.ArticleRequest{Title: "Draft", Slug: a.Slug, Content: "x", CategoryID: s.category.ID, Status: models.StatusPublished}
	published, err := s.service.Update(s.ctx, a.ID, req)
	s.Require().NoError(err)
	s.True(published.Published)
	s.Require().NotNil(published.PublishedAt)
	first := *published.PublishedAt

	req.Title = "Draft, edited"
	again, err := s.service.Update(s.ctx, a.ID, req)
	s.Require().NoError(err)
	s.Equal("Draft, edited", again.Title)
	s.WithinDuration(first, *again.PublishedAt, 0)
}

func (s *ArticleServiceSuite) TestViewCountsPublishedOnly() {
	draft := testdb.Article(s.T(), s.db, s.category.ID, s.author.ID)
	pub := testdb.Article(s.T(), s.db, s.category.ID, s.author.ID, testdb.Published, testdb.Views(3))

	_, err := s.service.View(s.ctx, draft.Slug)
	s.IsType(models.ErrorNotFound{}, err)

	got, err := s.service.View(s.ctx, pub.Slug)
	s.Require().NoError(err)
	s.EqualValues(4, got.Views)

	got, err = s.service.View(s.ctx, pub.Slug)
	s.Require().NoError(err)
	s.EqualValues(5, got.Views)
}

func (s *ArticleServiceSuite) TestListByCategorySlug() {
	child := testdb.Category(s.T(), s.db, "elections", s.category.ID, 0)
	testdb.Article(s.T(), s.db, child.ID, s.author.ID, testdb.Published)
	testdb.Article(s.T(), s.db, s.category.ID, s.author.ID, testdb.Published)

	articles, total, err := s.service.List(s.ctx, models.ArticleListParams{Category: "politics", PublishedOnly: true})
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Len(articles, 2)

	articles, total, err = s.service.List(s.ctx, models.ArticleListParams{Category: "nope", PublishedOnly: true})
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(articles)
}

func (s *ArticleServiceSuite) TestHighlights() {
	testdb.Article(s.T(), s.db, s.category.ID, s.author.ID, testdb.Published, testdb.Trending)
	testdb.Article(s.T(), s.db, s.category.ID, s.author.ID, testdb.Trending)
	testdb.Article(s.T(), s.db, s.category.ID, s.author.ID, testdb.Published)

	trending, err := s.service.Highlights(s.ctx, HighlightTrending, 0)
	s.Require().NoError(err)
	s.Len(trending, 1)

	_, err = s.service.Highlights(s.ctx, Highlight("viral"), 5)
	s.IsType(models.ErrorValidation{}, err)
}

func (s *ArticleServiceSuite) TestDelete() {
	a := testdb.Article(s.T(), s.db, s.category.ID, s.author.ID)
	s.Require().NoError(s.service.Delete(s.ctx, a.ID))
	s.IsType(models.ErrorNotFound{}, s.service.Delete(s.ctx, a.ID))
}

func TestArticleServiceSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceSuite))
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit, wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultPageLimit},
		{-3, 5, 1, 5},
		{2, 500, 2, MaxPageLimit},
		{4, 100, 4, 100},
	}
	for _, tt := range tests {
		page, limit := NormalizePage(tt.page, tt.limit, DefaultPageLimit)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLimit, limit)
	}
}
