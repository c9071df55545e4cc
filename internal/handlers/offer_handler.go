package handlers

import (
	"net/http"

	"domwork_backend/internal/logger"
	"domwork_backend/internal/middleware"
	"domwork_backend/internal/models"
	"domwork_backend/internal/services"
	"domwork_backend/internal/services/dto"
	"domwork_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewOfferHandler(base *BaseHandler, matchingService services.MatchingService) *OfferHandler {
	return &OfferHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *OfferHandler) RegisterRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	offers.Use(middleware.AuthMiddleware())
	{
		offers.POST("", middleware.RequireRole(models.UserRoleEmployer), h.CreateOffer)
		offers.GET("", middleware.RequireRole(models.UserRoleWorker), h.ListMyOffers)
		offers.GET("/sent", middleware.RequireRole(models.UserRoleEmployer), h.ListSentOffers)
		offers.POST("/:id/accept", middleware.RequireRole(models.UserRoleWorker), h.AcceptOffer)
		offers.POST("/:id/complete", middleware.RequireRole(models.UserRoleWorker), h.CompleteJob)
	}
}

// CreateOffer создает новое предложение работы от работодателя
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	ctx := c.Request.Context()

	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.matchingService.CreateOffer(ctx, employerID, req.WorkerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Job offer created",
		"offer_id", resp.ID,
		"employer_id", employerID,
		"worker_id", req.WorkerID,
	)
	c.JSON(http.StatusCreated, resp)
}

// ListMyOffers возвращает входящие предложения работника
func (h *OfferHandler) ListMyOffers(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.matchingService.ListWorkerOffers(ctx, workerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSentOffers возвращает исходящие предложения работодателя, опционально по статусу
func (h *OfferHandler) ListSentOffers(c *gin.Context) {
	ctx := c.Request.Context()

	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	status := models.OfferStatus(c.Query("status"))
	if status != "" && !models.ValidOfferStatus(status) {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Unknown offer status: "+string(status)))
		return
	}

	resp, err := h.matchingService.ListEmployerOffers(ctx, employerID, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptOffer принимает ожидающее предложение от имени работника
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	offerID := c.Param("id")

	resp, err := h.matchingService.AcceptOffer(ctx, workerID, offerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Job offer accepted", "offer_id", offerID, "worker_id", workerID)
	c.JSON(http.StatusOK, resp)
}

// CompleteJob завершает принятую работу, опционально с оценкой
func (h *OfferHandler) CompleteJob(c *gin.Context) {
	ctx := c.Request.Context()

	workerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	offerID := c.Param("id")

	var req dto.CompleteJobRequest
	if !h.BindAndValidateOptionalJSON(c, &req) {
		return
	}

	resp, err := h.matchingService.CompleteJob(ctx, workerID, offerID, req.Rating)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(ctx, "Job completed", "offer_id", offerID, "worker_id", workerID)
	c.JSON(http.StatusOK, resp)
}
