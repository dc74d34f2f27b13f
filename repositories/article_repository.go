package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"newsportal/models"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error)
	List(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error)
	// IncrementViews bumps the view counter in a single UPDATE statement.
	IncrementViews(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	err := r.db.WithContext(ctx).Omit("Category", "Author").Create(article).Error
	if isUniqueViolation(err) {
		return models.NewConflictError("article slug %q is already in use", article.Slug)
	}
	return err
}

// Update saves the article columns and replaces its tag set.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags := article.Tags
		err := tx.Omit("Category", "Author", "Tags", "CreatedAt").Save(article).Error
		if isUniqueViolation(err) {
			return models.NewConflictError("article slug %q is already in use", article.Slug)
		}
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			return tx.Model(article).Association("Tags").Clear()
		}
		return tx.Model(article).Association("Tags").Replace(tags)
	})
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article := models.Article{ID: id}
		if err := tx.Model(&article).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Article{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("article not found")
		}
		return nil
	})
}

func (r *articleRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Category.Parent").Preload("Author", publicProfile).Preload("Tags")
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.withRelations(r.db.WithContext(ctx)).First(&article, id).Error; err != nil {
		return nil, notFound(err, "article")
	}
	return &article, nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	query := r.withRelations(r.db.WithContext(ctx)).Where("slug = ?", slug)
	if publishedOnly {
		query = query.Where("status = ?", models.StatusPublished)
	}

	var article models.Article
	if err := query.First(&article).Error; err != nil {
		return nil, notFound(err, "article")
	}
	return &article, nil
}

// List filters articles. A CategoryID filter matches the category itself
// and, one level down, articles filed under its direct children.
func (r *articleRepository) List(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Article{})

	if params.PublishedOnly {
		query = query.Where("articles.status = ?", models.StatusPublished)
	} else if params.Status != "" {
		query = query.Where("articles.status = ?", params.Status)
	}

	if params.CategoryID > 0 {
		query = query.Where(
			"articles.category_id = ? OR articles.category_id IN (?)",
			params.CategoryID,
			r.db.WithContext(ctx).Model(&models.Category{}).Select("id").Where("parent_id = ?", params.CategoryID),
		)
	}

	if params.Tag != "" {
		query = query.Where("articles.id IN (?)",
			r.db.WithContext(ctx).Table("article_tags").
				Select("article_tags.article_id").
				Joins("JOIN tags ON tags.id = article_tags.tag_id").
				Where("tags.slug = ?", params.Tag))
	}

	if params.Language != "" {
		query = query.Where("articles.language = ?", params.Language)
	}
	if params.Featured != nil {
		query = query.Where("articles.is_featured = ?", *params.Featured)
	}
	if params.Trending != nil {
		query = query.Where("articles.is_trending = ?", *params.Trending)
	}
	if params.Breaking != nil {
		query = query.Where("articles.is_breaking = ?", *params.Breaking)
	}
	if params.AuthorID > 0 {
		query = query.Where("articles.author_id = ?", params.AuthorID)
	}
	if s := strings.TrimSpace(params.Search); s != "" {
		query = query.Where("LOWER(articles.title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := r.withRelations(query).
		Order("articles.created_at desc").
		Order("articles.id desc").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&articles).Error
	return articles, total, err
}

func (r *articleRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
