package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"newsportal/logging"
	"newsportal/models"
	"newsportal/repositories"
	"newsportal/slug"
	"newsportal/telemetry"
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Tree(ctx context.Context) ([]models.CategoryNode, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// Articles returns the published articles of the category with the given
	// slug, including those filed under its direct children.
	Articles(ctx context.Context, slug string, page, limit int) (*models.Category, []models.Article, int64, error)
	Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id uint, req models.CategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	articleRepo  repositories.ArticleRepository
	metrics      *telemetry.Metrics
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, articleRepo repositories.ArticleRepository, metrics *telemetry.Metrics) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		articleRepo:  articleRepo,
		metrics:      metrics,
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) Tree(ctx context.Context) ([]models.CategoryNode, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	roots, promoted := BuildTree(categories)
	if len(promoted) > 0 {
		logging.WithComponent("categories").Warn("Categories promoted to root: parent does not resolve",
			zap.Uints("category_ids", promoted))
		s.metrics.CategoryOrphans(ctx, len(promoted))
	}
	return roots, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *categoryService) Articles(ctx context.Context, slug string, page, limit int) (*models.Category, []models.Article, int64, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, 0, err
	}

	articles, total, err := s.articleRepo.List(ctx, models.ArticleListParams{
		CategoryID:    category.ID,
		PublishedOnly: true,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return nil, nil, 0, fmt.Errorf("list category articles: %w", err)
	}
	return category, ArticlesForCategory(*category, articles), total, nil
}

func (s *categoryService) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	category := &models.Category{}
	if err := applyCategoryRequest(category, req); err != nil {
		return nil, err
	}

	err := s.categoryRepo.Transaction(ctx, func(tx repositories.CategoryRepository) error {
		if category.ParentID != nil {
			if err := checkParent(ctx, tx, *category.ParentID); err != nil {
				return err
			}
		}
		return tx.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return s.categoryRepo.GetByID(ctx, category.ID)
}

func (s *categoryService) Update(ctx context.Context, id uint, req models.CategoryRequest) (*models.Category, error) {
	err := s.categoryRepo.Transaction(ctx, func(tx repositories.CategoryRepository) error {
		category, err := tx.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyCategoryRequest(category, req); err != nil {
			return err
		}

		if category.ParentID != nil {
			if *category.ParentID == id {
				return models.NewValidationError("a category cannot be its own parent")
			}
			children, err := tx.CountChildren(ctx, id)
			if err != nil {
				return err
			}
			if children > 0 {
				return models.NewValidationError("a category with sub-categories cannot be given a parent")
			}
			if err := checkParent(ctx, tx, *category.ParentID); err != nil {
				return err
			}
		}

		return tx.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return s.categoryRepo.GetByID(ctx, id)
}

// Delete removes a category that has neither sub-categories nor articles.
// The row stays locked from the checks to the delete, so a concurrent child
// insert, which locks the same parent row, waits or fails.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	return s.categoryRepo.Transaction(ctx, func(tx repositories.CategoryRepository) error {
		if _, err := tx.LockByID(ctx, id); err != nil {
			return err
		}

		children, err := tx.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if children > 0 {
			return models.NewConflictError("Cannot delete category with sub-categories. Delete or reassign them first.")
		}

		articles, err := tx.CountArticles(ctx, id)
		if err != nil {
			return err
		}
		if articles > 0 {
			return models.NewConflictError("Cannot delete category with articles. Reassign them first.")
		}

		return tx.Delete(ctx, id)
	})
}

// checkParent locks the parent row and enforces the two-level tree: a
// parent must itself be a root.
func checkParent(ctx context.Context, tx repositories.CategoryRepository, parentID uint) error {
	parent, err := tx.LockByID(ctx, parentID)
	var notFound models.ErrorNotFound
	if errors.As(err, &notFound) {
		return models.NewValidationError("parent category %d does not exist", parentID)
	}
	if err != nil {
		return err
	}
	if !parent.IsRoot() {
		return models.NewValidationError("parent category must be a top-level category")
	}
	return nil
}

func applyCategoryRequest(c *models.Category, req models.CategoryRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.NewValidationError("name is required")
	}

	s := slug.Generate(req.Slug)
	if s == "" {
		s = slug.GenerateOrRandom("category", name)
	}

	c.Name = name
	c.NameHi = strings.TrimSpace(req.NameHi)
	c.Slug = s
	c.Description = req.Description
	c.Image = req.Image
	c.Icon = req.Icon
	c.Color = req.Color
	c.SortOrder = req.SortOrder
	c.ParentID = req.ParentID
	if c.ParentID != nil && *c.ParentID == 0 {
		c.ParentID = nil
	}
	c.Parent = nil
	return nil
}
