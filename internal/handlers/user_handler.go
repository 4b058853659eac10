package handlers

import (
	"net/http"

	"heptabet_backend/internal/services"
	"heptabet_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin account-management surface.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, g *Guards) {
	users := rg.Group("/users", g.Auth, g.CSRF, g.Admin)
	{
		users.GET("", h.List)
		users.PUT("/:id/subscription", h.UpdateSubscription)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateSubscription(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := RequireParamID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
