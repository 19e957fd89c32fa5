package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/saarthi-api/internal/middleware"
	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/service"
	"github.com/noah-isme/saarthi-api/pkg/response"
)

type analyticsService interface {
	RiskOverview(ctx context.Context) (*models.RiskOverview, bool, error)
	System(ctx context.Context) models.SystemMetrics
}

type exportService interface {
	RiskReport(ctx context.Context, format string) (*service.ExportFile, error)
}

// AnalyticsHandler serves educator and admin analytics.
type AnalyticsHandler struct {
	analytics analyticsService
	exports   exportService
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analytics analyticsService, exports exportService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, exports: exports}
}

// Risk godoc
// @Summary Risk overview
// @Description Risk level counts, averages and the students at medium or high risk
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RiskOverview
// @Failure 403 {object} response.ErrorBody
// @Router /analytics/risk [get]
func (h *AnalyticsHandler) Risk(c *gin.Context) {
	overview, hit, err := h.analytics.RiskOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.OK(c, overview)
}

// Export godoc
// @Summary Export risk report
// @Tags Analytics
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "csv or pdf" Enums(csv, pdf)
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /analytics/risk/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	file, err := h.exports.RiskReport(c.Request.Context(), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}

// System godoc
// @Summary System metrics
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SystemMetrics
// @Failure 403 {object} response.ErrorBody
// @Router /analytics/system [get]
func (h *AnalyticsHandler) System(c *gin.Context) {
	response.OK(c, h.analytics.System(c.Request.Context()))
}
