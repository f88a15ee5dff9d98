package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type toolsHandler struct {
	toolsService portssvc.ToolsService
}

func registerToolsRoutes(rg *gin.RouterGroup, toolsService portssvc.ToolsService) {
	h := &toolsHandler{toolsService: toolsService}

	tools := rg.Group("/tools")
	{
		tools.POST("/validate", h.validateIdentifier)
		tools.POST("/totals", h.previewTotals)
	}
}

// validateIdentifier godoc
// @Summary Check a business identifier
// @Description Reports whether a SIRET, French VAT number, IBAN or tax rate is valid. An invalid value is not an error.
// @Tags tools
// @Accept  json
// @Produce  json
// @Param   identifier body dto.ValidateIdentifierRequest true "Kind and value"
// @Success 200 {object} dto.ValidateIdentifierResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /tools/validate [post]
func (h *toolsHandler) validateIdentifier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateIdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateIdentifier", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.toolsService.ValidateIdentifier(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to validate identifier")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// previewTotals godoc
// @Summary Compute totals without issuing an invoice
// @Description Rates are applied as given: tax on the subtotal, then the discount on subtotal plus tax.
// @Tags tools
// @Accept  json
// @Produce  json
// @Param   lines body dto.PreviewTotalsRequest true "Lines and rates"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /tools/totals [post]
func (h *toolsHandler) previewTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	totals, err := h.toolsService.PreviewTotals(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}
