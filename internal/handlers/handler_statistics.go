package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type statisticsHandler struct {
	statisticsService portssvc.StatisticsService
}

func registerStatisticsRoutes(rg *gin.RouterGroup, statisticsService portssvc.StatisticsService) {
	h := &statisticsHandler{statisticsService: statisticsService}
	rg.GET("/statistics/:year", h.getYearStatistics)
}

// getYearStatistics godoc
// @Summary Yearly invoicing statistics
// @Description Paid revenue per month, outstanding and overdue amounts, counts per status and top clients.
// @Tags statistics
// @Produce  json
// @Param   year path int true "Calendar year"
// @Param   top query int false "Number of top clients" default(5)
// @Success 200 {object} dto.YearStatisticsResponse
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /statistics/{year} [get]
func (h *statisticsHandler) getYearStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year: " + c.Param("year")})
		return
	}
	var params dto.YearStatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.statisticsService.GetYearStatistics(c.Request.Context(), year, params.Top)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToYearStatisticsResponse(stats))
}
