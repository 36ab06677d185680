package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"mktrading-backend/models"
)

const outstandingSheet = "Outstanding"

type OutstandingSource interface {
	Outstanding(ctx context.Context) ([]models.PartyOutstanding, error)
}

// ExportService renders reports as spreadsheets.
type ExportService struct {
	reports OutstandingSource
}

func NewExportService(reports OutstandingSource) *ExportService {
	return &ExportService{reports: reports}
}

// OutstandingWorkbook writes the outstanding report as an xlsx workbook with a
// totals row at the bottom.
func (s *ExportService) OutstandingWorkbook(ctx context.Context) ([]byte, error) {
	rows, err := s.reports.Outstanding(ctx)
	if err != nil {
		return nil, err
	}
	return outstandingXLSX(rows)
}

func outstandingXLSX(rows []models.PartyOutstanding) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", outstandingSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"Party ID", "Party", "Total Challan", "Total Paid", "Outstanding"}
	if err := file.SetSheetRow(outstandingSheet, "A1", &headers); err != nil {
		return nil, err
	}

	var totalChallan, totalPaid, totalOutstanding float64
	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		values := []interface{}{r.PartyID, r.PartyName, r.TotalChallan, r.TotalPaid, r.Outstanding}
		if err := file.SetSheetRow(outstandingSheet, cell, &values); err != nil {
			return nil, err
		}
		totalChallan += r.TotalChallan
		totalPaid += r.TotalPaid
		totalOutstanding += r.Outstanding
	}

	totals := []interface{}{"", "Total", totalChallan, totalPaid, totalOutstanding}
	if err := file.SetSheetRow(outstandingSheet, fmt.Sprintf("A%d", len(rows)+2), &totals); err != nil {
		return nil, err
	}
	if err := file.SetColWidth(outstandingSheet, "B", "B", 32); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
