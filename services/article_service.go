package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsportal/models"
	"newsportal/repositories"
	"newsportal/slug"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	HighlightLimit   = 5
)

// Highlight selects one of the flagged article lists on the home page.
type Highlight string

const (
	HighlightTrending Highlight = "trending"
	HighlightFeatured Highlight = "featured"
	HighlightBreaking Highlight = "breaking"
)

type ArticleService interface {
	// List applies params as given. Callers serving the public site set
	// PublishedOnly.
	List(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error)
	Highlights(ctx context.Context, kind Highlight, limit int) ([]models.Article, error)
	// View returns a published article and counts the read.
	View(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	Create(ctx context.Context, req models.ArticleRequest, authorID uint) (*models.Article, error)
	Update(ctx context.Context, id uint, req models.ArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uint) error
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// NormalizePage clamps page to at least 1 and limit to 1..MaxPageLimit,
// substituting def for a missing limit.
func NormalizePage(page, limit, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func (s *articleService) List(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error) {
	params.Page, params.Limit = NormalizePage(params.Page, params.Limit, DefaultPageLimit)

	if params.Category != "" && params.CategoryID == 0 {
		category, err := s.categoryRepo.GetBySlug(ctx, params.Category)
		var notFound models.ErrorNotFound
		if errors.As(err, &notFound) {
			return []models.Article{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		params.CategoryID = category.ID
	}

	articles, total, err := s.articleRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

func (s *articleService) Highlights(ctx context.Context, kind Highlight, limit int) ([]models.Article, error) {
	_, limit = NormalizePage(1, limit, HighlightLimit)
	params := models.ArticleListParams{PublishedOnly: true, Page: 1, Limit: limit}

	yes := true
	switch kind {
	case HighlightTrending:
		params.Trending = &yes
	case HighlightFeatured:
		params.Featured = &yes
	case HighlightBreaking:
		params.Breaking = &yes
	default:
		return nil, models.NewValidationError("unknown highlight %q", kind)
	}

	articles, _, err := s.articleRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list %s articles: %w", kind, err)
	}
	return articles, nil
}

func (s *articleService) View(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	if err := s.articleRepo.IncrementViews(ctx, article.ID); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	article.Views++
	return article, nil
}

func (s *articleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

func (s *articleService) Create(ctx context.Context, req models.ArticleRequest, authorID uint) (*models.Article, error) {
	if _, err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	tags, err := s.processTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	article := &models.Article{AuthorID: authorID}
	applyArticleRequest(article, req, time.Now())
	article.Tags = tags

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(ctx, article.ID)
}

func (s *articleService) Update(ctx context.Context, id uint, req models.ArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	tags, err := s.processTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	applyArticleRequest(article, req, time.Now())
	article.Tags = tags
	article.Category = nil
	article.Author = nil

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByID(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, id uint) error {
	return s.articleRepo.Delete(ctx, id)
}

func (s *articleService) checkCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	var notFound models.ErrorNotFound
	if errors.As(err, &notFound) {
		return nil, models.NewValidationError("category %d does not exist", id)
	}
	return category, err
}

// processTags resolves tag names to rows, creating the missing ones.
func (s *articleService) processTags(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := []models.Tag{}
	seen := map[string]bool{}

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		tag, err := s.tagRepo.GetByName(ctx, name)
		var notFound models.ErrorNotFound
		switch {
		case err == nil:
			tags = append(tags, *tag)
		case errors.As(err, &notFound):
			newTag := &models.Tag{Name: name, Slug: slug.GenerateOrRandom("tag", name)}
			if err := s.tagRepo.Create(ctx, newTag); err != nil {
				return nil, err
			}
			tags = append(tags, *newTag)
		default:
			return nil, err
		}
	}

	return tags, nil
}

func applyArticleRequest(a *models.Article, req models.ArticleRequest, now time.Time) {
	a.Title = strings.TrimSpace(req.Title)
	a.Slug = slug.Generate(req.Slug)
	if a.Slug == "" {
		a.Slug = slug.GenerateOrRandom("article", a.Title)
	}
	a.Content = req.Content
	a.ShortDescription = req.ShortDescription
	a.Image = req.Image
	a.VideoURL = req.VideoURL
	a.IsFeatured = req.IsFeatured
	a.IsTrending = req.IsTrending
	a.IsBreaking = req.IsBreaking
	a.CategoryID = req.CategoryID

	a.Language = req.Language
	if a.Language == "" {
		a.Language = "en"
	}

	a.Status = req.Status
	if a.Status == "" {
		a.Status = models.StatusDraft
	}
	a.Published = a.Status == models.StatusPublished
	if a.Published && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}
