package repositories

import (
	"context"

	"gorm.io/gorm"

	"newsportal/models"
)

// CommentTarget selects comments on one article or one blog.
type CommentTarget struct {
	ArticleID uint
	BlogID    uint
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// ListByStatus returns the comments on target with the given status,
	// oldest first.
	ListByStatus(ctx context.Context, target CommentTarget, status models.CommentStatus) ([]models.Comment, error)
	List(ctx context.Context, params models.CommentListParams) ([]models.Comment, int64, error)
	// UpdateModeration writes the moderation columns of one comment.
	UpdateModeration(ctx context.Context, id uint, status models.CommentStatus, isSpam bool, reason *string) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit("User").Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User", publicProfile).First(&comment, id).Error; err != nil {
		return nil, notFound(err, "comment")
	}
	return &comment, nil
}

func (r *commentRepository) ListByStatus(ctx context.Context, target CommentTarget, status models.CommentStatus) ([]models.Comment, error) {
	query := r.db.WithContext(ctx).Preload("User", publicProfile).Where("status = ?", status)
	switch {
	case target.ArticleID > 0:
		query = query.Where("article_id = ?", target.ArticleID)
	case target.BlogID > 0:
		query = query.Where("blog_id = ?", target.BlogID)
	default:
		return nil, models.NewValidationError("comment target is required")
	}

	var comments []models.Comment
	err := query.Order("created_at asc").Order("id asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) List(ctx context.Context, params models.CommentListParams) ([]models.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Comment{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := query.Preload("User", publicProfile).
		Order("created_at desc").
		Order("id desc").
		Scopes(paginate(params.Page, params.Limit)).
		Find(&comments).Error
	return comments, total, err
}

func (r *commentRepository) UpdateModeration(ctx context.Context, id uint, status models.CommentStatus, isSpam bool, reason *string) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":           status,
		"is_spam":          isSpam,
		"rejection_reason": reason,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("comment not found")
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("comment not found")
	}
	return nil
}
