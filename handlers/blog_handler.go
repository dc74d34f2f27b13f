package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsportal/helper"
	"newsportal/middleware"
	"newsportal/models"
	"newsportal/services"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

func (h *BlogHandler) GetPublicBlogs(c *gin.Context) {
	h.list(c, true)
}

func (h *BlogHandler) GetBlogs(c *gin.Context) {
	h.list(c, false)
}

func (h *BlogHandler) list(c *gin.Context, publishedOnly bool) {
	var params models.BlogListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}
	params.PublishedOnly = publishedOnly
	params.Page, params.Limit = services.NormalizePage(params.Page, params.Limit, services.DefaultPageLimit)

	blogs, total, err := h.blogService.List(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"blogs":      blogs,
		"pagination": h.Helper.GeneratePaging(params.Page, params.Limit, total),
	})
}

func (h *BlogHandler) GetPublicBlog(c *gin.Context) {
	blog, err := h.blogService.View(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, blog)
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	blog, err := h.blogService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req models.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), req, user.UserID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, blog)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := h.Helper.ParseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
