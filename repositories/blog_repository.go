package repositories

import (
	"context"

	"gorm.io/gorm"

	"newsportal/models"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Blog, error)
	List(ctx context.Context, params models.BlogListParams) ([]models.Blog, int64, error)
	IncrementViews(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	err := r.db.WithContext(ctx).Omit("Author").Create(blog).Error
	if isUniqueViolation(err) {
		return models.NewConflictError("blog slug %q is already in use", blog.Slug)
	}
	return err
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	err := r.db.WithContext(ctx).Omit("Author", "CreatedAt").Save(blog).Error
	if isUniqueViolation(err) {
		return models.NewConflictError("blog slug %q is already in use", blog.Slug)
	}
	return err
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Blog{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("blog not found")
		}
		return nil
	})
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.WithContext(ctx).Preload("Author", publicProfile).First(&blog, id).Error; err != nil {
		return nil, notFound(err, "blog")
	}
	return &blog, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Blog, error) {
	query := r.db.WithContext(ctx).Preload("Author", publicProfile).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.StatusPublished)
	}

	var blog models.Blog
	if err := query.First(&blog).Error; err != nil {
		return nil, notFound(err, "blog")
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context, params models.BlogListParams) ([]models.Blog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Blog{})
	if params.PublishedOnly {
		query = query.Where("status = ?", models.StatusPublished)
	}
	if params.Language != "" {
		query = query.Where("language = ?", params.Language)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	err := query.Preload("Author", publicProfile).
		Order("created_at desc").
		Order("id desc").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&blogs).Error
	return blogs, total, err
}

func (r *blogRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
