package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mktrading-backend/models"
)

type stubOutstanding struct {
	rows []models.PartyOutstanding
	err  error
}

func (s stubOutstanding) Outstanding(context.Context) ([]models.PartyOutstanding, error) {
	return s.rows, s.err
}

func TestOutstandingWorkbook(t *testing.T) {
	export := NewExportService(stubOutstanding{rows: []models.PartyOutstanding{
		{PartyID: 1, PartyName: "Acme", TotalChallan: 500, TotalPaid: 200, Outstanding: 300},
		{PartyID: 2, PartyName: "Bharat", TotalChallan: 100, TotalPaid: 150, Outstanding: 0},
	}})

	data, err := export.OutstandingWorkbook(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(outstandingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Party ID", "Party", "Total Challan", "Total Paid", "Outstanding"}, rows[0])
	assert.Equal(t, []string{"1", "Acme", "500", "200", "300"}, rows[1])
	assert.Equal(t, []string{"", "Total", "600", "350", "300"}, rows[3])
}

func TestOutstandingWorkbookPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewExportService(stubOutstanding{err: boom}).OutstandingWorkbook(context.Background())
	assert.ErrorIs(t, err, boom)
}
