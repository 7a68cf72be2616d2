package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

func (rc *ReportController) FinanceSummary(c *gin.Context) {
	summary, err := rc.Reports.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

// ExportFinanceReport streams the transaction report as CSV (default) or
// XLSX via ?format=xlsx.
func (rc *ReportController) ExportFinanceReport(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	stamp := time.Now().Format("20060102")

	var buf bytes.Buffer
	switch format {
	case "csv":
		if err := rc.Reports.ExportCSV(&buf); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=finance-%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
	case "xlsx":
		if err := rc.Reports.ExportXLSX(&buf); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=finance-%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		utils.JSONError(c, http.StatusBadRequest, "format must be csv or xlsx")
	}
}
