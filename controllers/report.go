// controllers/report.go
package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mktrading-backend/models"
	"mktrading-backend/services"
	"mktrading-backend/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportReader interface {
	LastMonthPayments(ctx context.Context) ([]models.PartyPaymentTotal, error)
	CurrentMonthPayments(ctx context.Context) ([]models.PartyPaymentTotal, error)
	Outstanding(ctx context.Context) ([]models.PartyOutstanding, error)
	TotalIncoming(ctx context.Context, window string) (models.TotalIncoming, error)
}

// ReportController handles all reporting functions
type ReportController struct {
	reports ReportReader
	export  *services.ExportService
	log     zerolog.Logger
}

func NewReportController(reports ReportReader, export *services.ExportService, log zerolog.Logger) *ReportController {
	return &ReportController{reports: reports, export: export, log: log}
}

func (rc *ReportController) LastMonthPayments(c *gin.Context) {
	rows, err := rc.reports.LastMonthPayments(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rc *ReportController) CurrentMonthPayments(c *gin.Context) {
	rows, err := rc.reports.CurrentMonthPayments(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (rc *ReportController) Outstanding(c *gin.Context) {
	rows, err := rc.reports.Outstanding(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TotalIncoming sums payments; ?month=current|last, anything else means all time
func (rc *ReportController) TotalIncoming(c *gin.Context) {
	total, err := rc.reports.TotalIncoming(c.Request.Context(), c.Query("month"))
	if err != nil {
		utils.RespondWithAppError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// ExportOutstanding sends the outstanding report as an xlsx download
func (rc *ReportController) ExportOutstanding(c *gin.Context) {
	data, err := rc.export.OutstandingWorkbook(c.Request.Context())
	if err != nil {
		utils.RespondWithAppError(c, rc.log, err)
		return
	}

	filename := fmt.Sprintf("outstanding-%s.xlsx", time.Now().Format(models.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
