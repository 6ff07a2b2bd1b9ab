package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// @Summary      Dashboard statistics
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.DashboardStats
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.Stats.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDashboardReport renders the analytics report as PDF (default) or HTML.
//
// @Summary      Render the analytics report
// @Tags         Dashboard
// @Produce      application/pdf,text/html
// @Security     BearerAuth
// @Param        format  query  string  false  "pdf (default) or html"
// @Success      200  {file}    file
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/dashboard/report [get]
func (h *Handler) GetDashboardReport(c *gin.Context) {
	ctx := c.Request.Context()
	switch strings.ToLower(c.DefaultQuery("format", "pdf")) {
	case "pdf":
		pdf, err := h.Stats.ReportPDF(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Header("Content-Disposition", `inline; filename="clinic-report.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	case "html":
		page, err := h.Stats.ReportHTML(ctx)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	default:
		respondError(c, http.StatusBadRequest, "format must be pdf or html")
	}
}
