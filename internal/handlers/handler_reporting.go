package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/apperrors"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/dto"
	"github.com/ZhouChenhao-hub/personal-accounting-app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for dashboard projections.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/stats", h.getStats)
		reports.GET("/expense-by-category", h.getExpenseByCategory)
		reports.GET("/income-by-category", h.getIncomeByCategory)
		reports.GET("/monthly-trend", h.getMonthlyTrend)
		reports.GET("/trend", h.getIncomeExpenseTrend)
	}
}

func (h *reportingHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *reportingHandler) getExpenseByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.GetExpenseByCategory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get expense breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expense breakdown"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (h *reportingHandler) getIncomeByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.GetIncomeByCategory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get income breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve income breakdown"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (h *reportingHandler) getMonthlyTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyTrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trend, err := h.reportingService.GetMonthlyTrend(c.Request.Context(), params.Months)
	if err != nil {
		logger.Error("Failed to get monthly trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve monthly trend"})
		return
	}

	c.JSON(http.StatusOK, trend)
}

func (h *reportingHandler) getIncomeExpenseTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TrendParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	trend, err := h.reportingService.GetIncomeExpenseTrend(c.Request.Context(), params.Period)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get income/expense trend", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trend"})
		}
		return
	}

	c.JSON(http.StatusOK, trend)
}
