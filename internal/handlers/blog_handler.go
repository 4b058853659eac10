package handlers

import (
	"net/http"

	"heptabet_backend/internal/middleware"
	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	rg.GET("/blog", g.OptionalAuth, h.List)

	admin := rg.Group("/blog", g.Auth, g.CSRF, g.Admin)
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogService.List(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	post, err := h.blogService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
