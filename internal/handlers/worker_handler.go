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

type WorkerHandler struct {
	*BaseHandler
	workerService   services.WorkerService
	matchingService services.MatchingService
}

func NewWorkerHandler(base *BaseHandler, workerService services.WorkerService, matchingService services.MatchingService) *WorkerHandler {
	return &WorkerHandler{
		BaseHandler:     base,
		workerService:   workerService,
		matchingService: matchingService,
	}
}

func (h *WorkerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	workers := rg.Group("/workers")
	workers.Use(middleware.AuthMiddleware())
	{
		workers.GET("", middleware.RequireRole(models.UserRoleEmployer), h.ListWorkers)
		workers.GET("/:id", h.GetWorker)
		workers.PUT("/me", middleware.RequireRole(models.UserRoleWorker), h.UpdateMe)
		workers.DELETE("/me", middleware.RequireRole(models.UserRoleWorker), h.DeleteMe)
		workers.POST("/:id/hire", middleware.RequireRole(models.UserRoleEmployer), h.Hire)
	}
}

// ListWorkers возвращает каталог работников для работодателя
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	ctx := c.Request.Context()

	page, pageSize := ParsePagination(c)

	resp, err := h.workerService.ListWorkers(ctx, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWorker возвращает профиль работника по ID
func (h *WorkerHandler) GetWorker(c *gin.Context) {
	ctx := c.Request.Context()

	workerID := c.Param("id")

	resp, err := h.workerService.GetWorker(ctx, workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateMe обновляет профиль аутентифицированного работника
func (h *WorkerHandler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.workerService.UpdateWorker(ctx, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Worker profile updated", "worker_id", userID)
	c.JSON(http.StatusOK, resp)
}

// DeleteMe удаляет аккаунт аутентифицированного работника
func (h *WorkerHandler) DeleteMe(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.workerService.DeleteWorker(ctx, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Worker account deleted", "worker_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

// Hire мгновенно нанимает свободного работника
func (h *WorkerHandler) Hire(c *gin.Context) {
	ctx := c.Request.Context()

	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	workerID := c.Param("id")

	resp, err := h.matchingService.Hire(ctx, employerID, workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Worker hired", "employer_id", employerID, "worker_id", workerID)
	c.JSON(http.StatusOK, resp)
}
