package services

import (
	"context"
	"fmt"
	"strings"

	"newsportal/models"
	"newsportal/repositories"
	"newsportal/slug"
)

type BlogService interface {
	List(ctx context.Context, params models.BlogListParams) ([]models.Blog, int64, error)
	// View returns a published blog and counts the read.
	View(ctx context.Context, slug string) (*models.Blog, error)
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	Create(ctx context.Context, req models.BlogRequest, authorID uint) (*models.Blog, error)
	Update(ctx context.Context, id uint, req models.BlogRequest) (*models.Blog, error)
	Delete(ctx context.Context, id uint) error
}

type blogService struct {
	blogRepo repositories.BlogRepository
}

func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) List(ctx context.Context, params models.BlogListParams) ([]models.Blog, int64, error) {
	params.Page, params.Limit = NormalizePage(params.Page, params.Limit, DefaultPageLimit)
	blogs, total, err := s.blogRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, total, nil
}

func (s *blogService) View(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	if err := s.blogRepo.IncrementViews(ctx, blog.ID); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	blog.Views++
	return blog, nil
}

func (s *blogService) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, req models.BlogRequest, authorID uint) (*models.Blog, error) {
	blog := &models.Blog{AuthorID: authorID}
	applyBlogRequest(blog, req)
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, blog.ID)
}

func (s *blogService) Update(ctx context.Context, id uint, req models.BlogRequest) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBlogRequest(blog, req)
	blog.Author = nil
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return s.blogRepo.GetByID(ctx, id)
}

func (s *blogService) Delete(ctx context.Context, id uint) error {
	return s.blogRepo.Delete(ctx, id)
}

func applyBlogRequest(b *models.Blog, req models.BlogRequest) {
	b.Title = strings.TrimSpace(req.Title)
	b.Slug = slug.Generate(req.Slug)
	if b.Slug == "" {
		b.Slug = slug.GenerateOrRandom("blog", b.Title)
	}
	b.Content = req.Content
	b.Excerpt = req.Excerpt
	b.Image = req.Image

	b.Language = req.Language
	if b.Language == "" {
		b.Language = "en"
	}
	b.Status = req.Status
	if b.Status == "" {
		b.Status = models.StatusDraft
	}
}
