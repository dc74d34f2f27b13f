package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal/helper"
	"newsportal/middleware"
	"newsportal/models"
	"newsportal/services"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetPublicArticles(c *gin.Context) {
	h.list(c, true)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	h.list(c, false)
}

func (h *ArticleHandler) list(c *gin.Context, publishedOnly bool) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	params.PublishedOnly = publishedOnly
	params.Page, params.Limit = services.NormalizePage(params.Page, params.Limit, services.DefaultPageLimit)

	articles, total, err := h.articleService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"articles":   articles,
		"pagination": h.Helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

// GetHighlights serves one of the trending, featured or breaking lists.
func (h *ArticleHandler) GetHighlights(kind services.Highlight) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q struct {
			Limit int `form:"limit"`
		}
		if err := c.ShouldBindQuery(&q); err != nil {
			h.Helper.SendBindError(c, err)
			return
		}

		articles, err := h.articleService.Highlights(c.Request.Context(), kind, q.Limit)
		if err != nil {
			h.Helper.SendError(c, err)
			return
		}

		h.Helper.SendSuccess(c, http.StatusOK, articles)
	}
}

func (h *ArticleHandler) GetPublicArticle(c *gin.Context) {
	article, err := h.articleService.View(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, article)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, article)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req, user.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Article deleted successfully"})
}
