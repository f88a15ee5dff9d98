package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enterpriseHandler exposes the issuing company and its invoice counter.
type enterpriseHandler struct {
	enterpriseService portssvc.EnterpriseSvcFacade
}

func newEnterpriseHandler(es portssvc.EnterpriseSvcFacade) *enterpriseHandler {
	return &enterpriseHandler{enterpriseService: es}
}

func registerEnterpriseRoutes(rg *gin.RouterGroup, enterpriseService portssvc.EnterpriseSvcFacade) {
	h := newEnterpriseHandler(enterpriseService)

	enterprise := rg.Group("/enterprise")
	{
		enterprise.GET("", h.getEnterprise)
		enterprise.PUT("", h.updateEnterprise)
		enterprise.POST("/sequence/reset", h.resetSequence)
	}
}

// getEnterprise godoc
// @Summary Get the issuing company
// @Tags enterprise
// @Produce  json
// @Success 200 {object} dto.EnterpriseResponse
// @Failure 404 {object} map[string]string "Enterprise not configured"
// @Router /enterprise [get]
func (h *enterpriseHandler) getEnterprise(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	enterprise, err := h.enterpriseService.GetEnterprise(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve enterprise")
		return
	}
	c.JSON(http.StatusOK, dto.ToEnterpriseResponse(enterprise))
}

// updateEnterprise godoc
// @Summary Create or update the issuing company
// @Description The invoice counter is not affected; use the sequence reset endpoint for that.
// @Tags enterprise
// @Accept  json
// @Produce  json
// @Param   enterprise body dto.UpdateEnterpriseRequest true "Company details"
// @Success 200 {object} dto.EnterpriseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update enterprise"
// @Router /enterprise [put]
func (h *enterpriseHandler) updateEnterprise(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEnterprise", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	enterprise, err := h.enterpriseService.UpdateEnterprise(c.Request.Context(), req, middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to update enterprise")
		return
	}
	c.JSON(http.StatusOK, dto.ToEnterpriseResponse(enterprise))
}

// resetSequence godoc
// @Summary Restart invoice numbering
// @Description Sets the next invoice sequence to 1 for the current year.
// @Tags enterprise
// @Produce  json
// @Success 200 {object} dto.EnterpriseResponse
// @Failure 404 {object} map[string]string "Enterprise not configured"
// @Failure 500 {object} map[string]string "Failed to reset sequence"
// @Router /enterprise/sequence/reset [post]
func (h *enterpriseHandler) resetSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	enterprise, err := h.enterpriseService.ResetSequence(c.Request.Context(), middleware.GetActorFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to reset sequence")
		return
	}
	logger.Info("Invoice sequence reset")
	c.JSON(http.StatusOK, dto.ToEnterpriseResponse(enterprise))
}
