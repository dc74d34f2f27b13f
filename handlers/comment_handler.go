package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal/helper"
	"newsportal/middleware"
	"newsportal/models"
	"newsportal/repositories"
	"newsportal/services"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// SubmitComment accepts comments from anonymous and signed-in readers. A
// signed-in reader is attributed by account, not by the submitted name.
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	author := services.Author{Name: req.Name, Email: req.Email}
	if user, ok := middleware.CurrentUser(c); ok {
		author.UserID = user.UserID
	}

	comment, message, err := h.commentService.Submit(c.Request.Context(), req, author)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": message,
		"comment": comment,
	})
}

func (h *CommentHandler) GetArticleComments(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "articleId")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.approved(c, repositories.CommentTarget{ArticleID: id})
}

func (h *CommentHandler) GetBlogComments(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "blogId")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.approved(c, repositories.CommentTarget{BlogID: id})
}

func (h *CommentHandler) approved(c *gin.Context, target repositories.CommentTarget) {
	comments, err := h.commentService.ListApproved(c.Request.Context(), target)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, comments)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	var params models.CommentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	params.Page, params.Limit = services.NormalizePage(params.Page, params.Limit, 20)

	comments, total, err := h.commentService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"comments":   comments,
		"pagination": h.Helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

func (h *CommentHandler) ApproveComment(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.Approve(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, comment)
}

// RejectComment takes an optional {"reason": "..."} body.
func (h *CommentHandler) RejectComment(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.RejectCommentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.Helper.SendBindError(c, err)
			return
		}
	}

	comment, err := h.commentService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, comment)
}

func (h *CommentHandler) MarkSpam(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	comment, err := h.commentService.MarkSpam(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
