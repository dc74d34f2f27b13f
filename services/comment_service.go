package services

import (
	"context"
	"fmt"
	"strings"

	"newsportal/models"
	"newsportal/repositories"
	"newsportal/telemetry"
)

const (
	MessageCommentPending = "Comment submitted for moderation"
	MessageCommentSpam    = "Comment flagged as spam"
)

// Author identifies who submits a comment. UserID is zero for guests.
type Author struct {
	UserID uint
	Name   string
	Email  string
}

type CommentService interface {
	// Submit classifies and stores a new comment. The returned message tells
	// the submitter whether it awaits moderation or was flagged.
	Submit(ctx context.Context, req models.CommentRequest, author Author) (*models.Comment, string, error)
	// ListApproved returns the public comments on one article or blog.
	ListApproved(ctx context.Context, target repositories.CommentTarget) ([]models.Comment, error)
	List(ctx context.Context, params models.CommentListParams) ([]models.Comment, int64, error)
	Approve(ctx context.Context, id uint) (*models.Comment, error)
	Reject(ctx context.Context, id uint, reason *string) (*models.Comment, error)
	MarkSpam(ctx context.Context, id uint) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	blogRepo    repositories.BlogRepository
	classifier  SpamClassifier
	metrics     *telemetry.Metrics
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	blogRepo repositories.BlogRepository,
	classifier SpamClassifier,
	metrics *telemetry.Metrics,
) CommentService {
	if classifier == nil {
		classifier = NewKeywordClassifier()
	}
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		blogRepo:    blogRepo,
		classifier:  classifier,
		metrics:     metrics,
	}
}

func (s *commentService) Submit(ctx context.Context, req models.CommentRequest, author Author) (*models.Comment, string, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, "", models.NewValidationError("content is required")
	}

	target, err := s.resolveTarget(ctx, req.ArticleID, req.BlogID)
	if err != nil {
		return nil, "", err
	}

	comment := &models.Comment{Content: content}
	if target.ArticleID > 0 {
		comment.ArticleID = &target.ArticleID
	} else {
		comment.BlogID = &target.BlogID
	}

	if author.UserID > 0 {
		comment.UserID = &author.UserID
	} else {
		comment.Name = strings.TrimSpace(author.Name)
		comment.Email = strings.TrimSpace(author.Email)
	}

	comment.IsSpam = s.classifier.IsSpam(content)
	comment.Status = models.CommentPending
	message := MessageCommentPending
	if comment.IsSpam {
		comment.Status = models.CommentSpam
		message = MessageCommentSpam
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, "", fmt.Errorf("create comment: %w", err)
	}
	s.metrics.CommentSubmitted(ctx, string(comment.Status))

	return comment, message, nil
}

func (s *commentService) resolveTarget(ctx context.Context, articleID, blogID *uint) (repositories.CommentTarget, error) {
	hasArticle := articleID != nil && *articleID > 0
	hasBlog := blogID != nil && *blogID > 0

	switch {
	case hasArticle && hasBlog:
		return repositories.CommentTarget{}, models.NewValidationError("a comment targets either an article or a blog, not both")
	case hasArticle:
		if _, err := s.articleRepo.GetByID(ctx, *articleID); err != nil {
			return repositories.CommentTarget{}, err
		}
		return repositories.CommentTarget{ArticleID: *articleID}, nil
	case hasBlog:
		if _, err := s.blogRepo.GetByID(ctx, *blogID); err != nil {
			return repositories.CommentTarget{}, err
		}
		return repositories.CommentTarget{BlogID: *blogID}, nil
	default:
		return repositories.CommentTarget{}, models.NewValidationError("articleId or blogId is required")
	}
}

func (s *commentService) ListApproved(ctx context.Context, target repositories.CommentTarget) ([]models.Comment, error) {
	comments, err := s.commentRepo.ListByStatus(ctx, target, models.CommentApproved)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].DisplayName = comments[i].AuthorName()
		comments[i].Email = ""
	}
	return comments, nil
}

func (s *commentService) List(ctx context.Context, params models.CommentListParams) ([]models.Comment, int64, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, 0, models.NewValidationError("unknown comment status %q", params.Status)
	}
	params.Page, params.Limit = NormalizePage(params.Page, params.Limit, 20)

	comments, total, err := s.commentRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	for i := range comments {
		comments[i].DisplayName = comments[i].AuthorName()
	}
	return comments, total, nil
}

func (s *commentService) Approve(ctx context.Context, id uint) (*models.Comment, error) {
	return s.transition(ctx, id, models.CommentApproved, false, nil)
}

// Reject leaves the spam flag as it was.
func (s *commentService) Reject(ctx context.Context, id uint, reason *string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		reason = &trimmed
		if trimmed == "" {
			reason = nil
		}
	}
	return s.transition(ctx, id, models.CommentRejected, comment.IsSpam, reason)
}

func (s *commentService) MarkSpam(ctx context.Context, id uint) (*models.Comment, error) {
	return s.transition(ctx, id, models.CommentSpam, true, nil)
}

func (s *commentService) transition(ctx context.Context, id uint, status models.CommentStatus, isSpam bool, reason *string) (*models.Comment, error) {
	if err := s.commentRepo.UpdateModeration(ctx, id, status, isSpam, reason); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comment.DisplayName = comment.AuthorName()
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}
