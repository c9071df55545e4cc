package handlers

import (
	"net/http"

	"domwork_backend/internal/logger"
	"domwork_backend/internal/middleware"
	"domwork_backend/internal/models"
	"domwork_backend/internal/services"
	"domwork_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	*BaseHandler
	employerService services.EmployerService
}

func NewEmployerHandler(base *BaseHandler, employerService services.EmployerService) *EmployerHandler {
	return &EmployerHandler{
		BaseHandler:     base,
		employerService: employerService,
	}
}

func (h *EmployerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employers := rg.Group("/employers")
	employers.Use(middleware.AuthMiddleware())
	{
		employers.GET("/:id", h.GetEmployer)
		employers.PUT("/me", middleware.RequireRole(models.UserRoleEmployer), h.UpdateMe)
		employers.DELETE("/me", middleware.RequireRole(models.UserRoleEmployer), h.DeleteMe)
	}
}

// GetEmployer возвращает профиль работодателя по ID
func (h *EmployerHandler) GetEmployer(c *gin.Context) {
	ctx := c.Request.Context()

	employerID := c.Param("id")

	resp, err := h.employerService.GetEmployer(ctx, employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMe обновляет профиль аутентифицированного работодателя
func (h *EmployerHandler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.employerService.UpdateEmployer(ctx, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Employer profile updated", "employer_id", userID)
	c.JSON(http.StatusOK, resp)
}

// DeleteMe удаляет аккаунт аутентифицированного работодателя
func (h *EmployerHandler) DeleteMe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.employerService.DeleteEmployer(ctx, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Employer account deleted", "employer_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
