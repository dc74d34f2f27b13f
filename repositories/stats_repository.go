package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"newsportal/models"
)

// ViewRow is the per-article input to the daily traffic series.
type ViewRow struct {
	CreatedAt time.Time
	Views     int64
}

// CommentRow is the per-comment input to the daily activity series.
type CommentRow struct {
	CreatedAt time.Time
	Status    models.CommentStatus
}

// StatsRepository runs the read-only rollups behind the dashboards. A nil
// since means "all time"; otherwise rows with created_at >= since count.
type StatsRepository interface {
	ArticleCounts(ctx context.Context, since *time.Time) (models.ArticleCounts, error)
	CategoryBreakdown(ctx context.Context, since *time.Time) ([]models.CategoryCount, error)
	CommentCounts(ctx context.Context, since *time.Time) (total int64, pending int64, err error)
	CountUsers(ctx context.Context) (int64, error)
	ArticleViews(ctx context.Context, since time.Time) ([]ViewRow, error)
	CommentStatuses(ctx context.Context, since time.Time) ([]CommentRow, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func since(db *gorm.DB, column string, t *time.Time) *gorm.DB {
	if t == nil {
		return db
	}
	return db.Where(column+" >= ?", t.UTC())
}

func (r *statsRepository) ArticleCounts(ctx context.Context, t *time.Time) (models.ArticleCounts, error) {
	var counts models.ArticleCounts
	query := r.db.WithContext(ctx).Model(&models.Article{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS published,
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS drafts,
		COALESCE(SUM(CASE WHEN is_trending THEN 1 ELSE 0 END), 0) AS trending,
		COALESCE(SUM(CASE WHEN is_breaking THEN 1 ELSE 0 END), 0) AS breaking,
		COALESCE(SUM(views), 0) AS views`,
		models.StatusPublished, models.StatusDraft)
	err := since(query, "created_at", t).Scan(&counts).Error
	return counts, err
}

// CategoryBreakdown left-joins every category against its articles so that
// empty categories report zero.
func (r *statsRepository) CategoryBreakdown(ctx context.Context, t *time.Time) ([]models.CategoryCount, error) {
	join := "LEFT JOIN articles ON articles.category_id = categories.id"
	var args []interface{}
	if t != nil {
		join += " AND articles.created_at >= ?"
		args = append(args, t.UTC())
	}

	var rows []models.CategoryCount
	err := r.db.WithContext(ctx).
		Table("categories").
		Select("categories.id AS category_id, categories.name AS name, COUNT(articles.id) AS count").
		Joins(join, args...).
		Group("categories.id, categories.name, categories.sort_order").
		Order("categories.sort_order, categories.id").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CommentCounts(ctx context.Context, t *time.Time) (int64, int64, error) {
	var out struct {
		Total   int64
		Pending int64
	}
	query := r.db.WithContext(ctx).Model(&models.Comment{}).Select(`
		COUNT(*) AS total,
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending`,
		models.CommentPending)
	err := since(query, "created_at", t).Scan(&out).Error
	return out.Total, out.Pending, err
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) ArticleViews(ctx context.Context, t time.Time) ([]ViewRow, error) {
	var rows []ViewRow
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("created_at, views").
		Where("created_at >= ?", t.UTC()).
		Order("created_at").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CommentStatuses(ctx context.Context, t time.Time) ([]CommentRow, error) {
	var rows []CommentRow
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("created_at, status").
		Where("created_at >= ?", t.UTC()).
		Order("created_at").
		Scan(&rows).Error
	return rows, err
}
