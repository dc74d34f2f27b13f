package models

import "time"

// CategoryCount is one row of the category breakdown. Categories without
// articles appear with Count 0.
type CategoryCount struct {
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

type AdminStats struct {
	TotalArticles     int64           `json:"totalArticles"`
	PublishedArticles int64           `json:"publishedArticles"`
	DraftArticles     int64           `json:"draftArticles"`
	TodayArticles     int64           `json:"todayArticles"`
	TrendingArticles  int64           `json:"trendingArticles"`
	BreakingArticles  int64           `json:"breakingArticles"`
	TotalViews        int64           `json:"totalViews"`
	TotalComments     int64           `json:"totalComments"`
	PendingComments   int64           `json:"pendingComments"`
	TotalUsers        int64           `json:"totalUsers"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
}

type DashboardStats struct {
	Period            string          `json:"period"`
	Since             time.Time       `json:"since"`
	Articles          int64           `json:"articles"`
	Published         int64           `json:"published"`
	Drafts            int64           `json:"drafts"`
	Views             int64           `json:"views"`
	Comments          int64           `json:"comments"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
}

type TrafficPoint struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type CommentActivityPoint struct {
	Date     string `json:"date"`
	Total    int64  `json:"total"`
	Approved int64  `json:"approved"`
	Pending  int64  `json:"pending"`
	Rejected int64  `json:"rejected"`
	Spam     int64  `json:"spam"`
}

// ArticleCounts are the article totals shared by the overall and windowed
// rollups.
type ArticleCounts struct {
	Total     int64
	Published int64
	Drafts    int64
	Trending  int64
	Breaking  int64
	Views     int64
}
