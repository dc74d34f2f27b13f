package services

import (
	"context"
	"fmt"
	"time"

	"newsportal/models"
	"newsportal/repositories"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

const (
	DefaultSeriesDays = 7
	MaxSeriesDays     = 90
	dateLayout        = "2006-01-02"
)

type StatsService interface {
	Overview(ctx context.Context) (*models.AdminStats, error)
	// Dashboard recomputes the article and comment counts for the window
	// ending now. An empty period means weekly.
	Dashboard(ctx context.Context, period Period) (*models.DashboardStats, error)
	// Traffic sums article views per creation day over the last days
	// calendar days, today included. Days without articles report zero.
	Traffic(ctx context.Context, days int) ([]models.TrafficPoint, error)
	CommentActivity(ctx context.Context, days int) ([]models.CommentActivityPoint, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
	loc       *time.Location
	now       func() time.Time
}

// NewStatsService reports day boundaries in loc. now defaults to time.Now.
func NewStatsService(statsRepo repositories.StatsRepository, loc *time.Location, now func() time.Time) StatsService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &statsService{statsRepo: statsRepo, loc: loc, now: now}
}

func (s *statsService) Overview(ctx context.Context) (*models.AdminStats, error) {
	all, err := s.statsRepo.ArticleCounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	midnight := StartOfDay(s.now(), s.loc)
	today, err := s.statsRepo.ArticleCounts(ctx, &midnight)
	if err != nil {
		return nil, fmt.Errorf("count today's articles: %w", err)
	}

	breakdown, err := s.statsRepo.CategoryBreakdown(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	comments, pending, err := s.statsRepo.CommentCounts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	users, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &models.AdminStats{
		TotalArticles:     all.Total,
		PublishedArticles: all.Published,
		DraftArticles:     all.Drafts,
		TodayArticles:     today.Total,
		TrendingArticles:  all.Trending,
		BreakingArticles:  all.Breaking,
		TotalViews:        all.Views,
		TotalComments:     comments,
		PendingComments:   pending,
		TotalUsers:        users,
		CategoryBreakdown: nonNil(breakdown),
	}, nil
}

func (s *statsService) Dashboard(ctx context.Context, period Period) (*models.DashboardStats, error) {
	if period == "" {
		period = PeriodWeekly
	}
	cutoff, err := PeriodCutoff(period, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	articles, err := s.statsRepo.ArticleCounts(ctx, &cutoff)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	breakdown, err := s.statsRepo.CategoryBreakdown(ctx, &cutoff)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}

	comments, _, err := s.statsRepo.CommentCounts(ctx, &cutoff)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	return &models.DashboardStats{
		Period:            string(period),
		Since:             cutoff,
		Articles:          articles.Total,
		Published:         articles.Published,
		Drafts:            articles.Drafts,
		Views:             articles.Views,
		Comments:          comments,
		CategoryBreakdown: nonNil(breakdown),
	}, nil
}

func (s *statsService) Traffic(ctx context.Context, days int) ([]models.TrafficPoint, error) {
	start, keys := s.dayKeys(days)

	rows, err := s.statsRepo.ArticleViews(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("load article views: %w", err)
	}

	sums := make(map[string]int64, len(keys))
	for _, r := range rows {
		sums[r.CreatedAt.In(s.loc).Format(dateLayout)] += r.Views
	}

	points := make([]models.TrafficPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, models.TrafficPoint{Date: k, Views: sums[k]})
	}
	return points, nil
}

func (s *statsService) CommentActivity(ctx context.Context, days int) ([]models.CommentActivityPoint, error) {
	start, keys := s.dayKeys(days)

	rows, err := s.statsRepo.CommentStatuses(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("load comment statuses: %w", err)
	}

	buckets := make(map[string]*models.CommentActivityPoint, len(keys))
	points := make([]models.CommentActivityPoint, len(keys))
	for i, k := range keys {
		points[i].Date = k
		buckets[k] = &points[i]
	}

	for _, r := range rows {
		p, ok := buckets[r.CreatedAt.In(s.loc).Format(dateLayout)]
		if !ok {
			continue
		}
		p.Total++
		switch r.Status {
		case models.CommentApproved:
			p.Approved++
		case models.CommentPending:
			p.Pending++
		case models.CommentRejected:
			p.Rejected++
		case models.CommentSpam:
			p.Spam++
		}
	}
	return points, nil
}

// dayKeys returns local midnight of the first day in the series and one
// YYYY-MM-DD key per day through today.
func (s *statsService) dayKeys(days int) (time.Time, []string) {
	days = ClampDays(days)
	now := s.now().In(s.loc)
	y, m, d := now.Date()
	start := time.Date(y, m, d-(days-1), 0, 0, 0, 0, s.loc)

	keys := make([]string, 0, days)
	for i := 0; i < days; i++ {
		keys = append(keys, time.Date(y, m, d-(days-1)+i, 0, 0, 0, 0, s.loc).Format(dateLayout))
	}
	return start, keys
}

// ClampDays defaults a missing or non-positive series length and caps it.
func ClampDays(days int) int {
	if days < 1 {
		return DefaultSeriesDays
	}
	if days > MaxSeriesDays {
		return MaxSeriesDays
	}
	return days
}

// PeriodCutoff returns the start of the window ending at now: local midnight
// for daily, seven days back for weekly, one calendar month back for monthly.
func PeriodCutoff(period Period, now time.Time, loc *time.Location) (time.Time, error) {
	switch period {
	case PeriodDaily:
		return StartOfDay(now, loc), nil
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonthly:
		return SubtractMonths(now, 1), nil
	default:
		return time.Time{}, models.NewValidationError("period must be one of daily, weekly, monthly")
	}
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SubtractMonths moves t back n calendar months, keeping the time of day. A
// day that does not exist in the target month is clamped to its last day,
// so March 31 minus one month is February 28 (29 in leap years).
func SubtractMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func nonNil(rows []models.CategoryCount) []models.CategoryCount {
	if rows == nil {
		return []models.CategoryCount{}
	}
	return rows
}
