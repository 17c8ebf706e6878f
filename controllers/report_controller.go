package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// ReportController exposes the admin practice-log listing and export.
type ReportController struct {
	report *services.ReportService
	export *services.ExportService
}

// NewReportController builds a report controller.
func NewReportController(report *services.ReportService, export *services.ExportService) *ReportController {
	return &ReportController{report: report, export: export}
}

func filtersFromQuery(c *gin.Context) services.ReportFilters {
	return services.ReportFilters{
		StartDate:    c.Query("start_date"),
		EndDate:      c.Query("end_date"),
		Store:        c.Query("store"),
		Role:         c.Query("role"),
		Staff:        c.Query("staff"),
		TechCategory: c.Query("tech_category"),
	}
}

// Records handles GET /api/v1/admin/practice-records
func (rc *ReportController) Records(c *gin.Context) {
	records, err := rc.report.Records(filtersFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, records)
}

// Export handles GET /api/v1/admin/practice-records/export - streams
// the filtered log as an .xlsx attachment.
func (rc *ReportController) Export(c *gin.Context) {
	records, err := rc.report.Records(filtersFromQuery(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	content, filename, err := rc.export.Export(c.Request.Context(), records)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
