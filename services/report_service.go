package services

import (
	"context"
	"time"

	"mktrading-backend/database"
	"mktrading-backend/models"
	"mktrading-backend/utils"
)

const (
	WindowCurrent = "current"
	WindowLast    = "last"
	WindowAll     = "all"
)

// ParseWindow maps a query value to a report window. Anything unrecognized is "all".
func ParseWindow(s string) string {
	switch s {
	case WindowCurrent, WindowLast:
		return s
	default:
		return WindowAll
	}
}

// ReportService computes the aggregate ledger reports. Month windows are
// derived from now in loc and bound as date parameters.
type ReportService struct {
	gw  *database.Gateway
	loc *time.Location
	now func() time.Time
}

func NewReportService(gw *database.Gateway, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportService{gw: gw, loc: loc, now: time.Now}
}

func (s *ReportService) LastMonthPayments(ctx context.Context) ([]models.PartyPaymentTotal, error) {
	return s.paymentsIn(ctx, "last month payments", utils.LastMonth(s.now(), s.loc))
}

func (s *ReportService) CurrentMonthPayments(ctx context.Context) ([]models.PartyPaymentTotal, error) {
	return s.paymentsIn(ctx, "current month payments", utils.CurrentMonth(s.now(), s.loc))
}

func (s *ReportService) paymentsIn(ctx context.Context, op string, w utils.Window) ([]models.PartyPaymentTotal, error) {
	rows := []models.PartyPaymentTotal{}
	query := `
		SELECT p.id AS party_id, p.name AS party_name,
		       COALESCE(SUM(pm.amount), 0) AS total_payment
		FROM parties p
		JOIN payments pm ON pm.party_id = p.id
		WHERE pm.payment_date >= ? AND pm.payment_date < ?
		GROUP BY p.id, p.name
		HAVING COALESCE(SUM(pm.amount), 0) > 0
		ORDER BY total_payment DESC, p.name
	`
	if err := s.gw.Select(ctx, op, &rows, query, w.Start, w.End); err != nil {
		return nil, err
	}
	return rows, nil
}

// Outstanding lists every party with challans and what it still owes, floored at zero.
func (s *ReportService) Outstanding(ctx context.Context) ([]models.PartyOutstanding, error) {
	rows := []models.PartyOutstanding{}
	query := `
		WITH challan_totals AS (
			SELECT party_id, COALESCE(SUM(amount), 0) AS total_challan
			FROM challans
			GROUP BY party_id
		),
		payment_totals AS (
			SELECT party_id, COALESCE(SUM(amount), 0) AS total_paid
			FROM payments
			GROUP BY party_id
		)
		SELECT p.id AS party_id, p.name AS party_name,
		       COALESCE(ct.total_challan, 0) AS total_challan,
		       COALESCE(pt.total_paid, 0) AS total_paid,
		       CASE
		           WHEN COALESCE(ct.total_challan, 0) - COALESCE(pt.total_paid, 0) > 0
		           THEN COALESCE(ct.total_challan, 0) - COALESCE(pt.total_paid, 0)
		           ELSE 0
		       END AS outstanding
		FROM parties p
		LEFT JOIN challan_totals ct ON ct.party_id = p.id
		LEFT JOIN payment_totals pt ON pt.party_id = p.id
		WHERE COALESCE(ct.total_challan, 0) > 0
		ORDER BY outstanding DESC, p.name
	`
	if err := s.gw.Select(ctx, "outstanding report", &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalIncoming sums payments in the given window, or all payments for "all".
func (s *ReportService) TotalIncoming(ctx context.Context, window string) (models.TotalIncoming, error) {
	window = ParseWindow(window)

	query := `SELECT COALESCE(SUM(amount), 0) FROM payments`
	var args []interface{}
	switch window {
	case WindowCurrent:
		w := utils.CurrentMonth(s.now(), s.loc)
		query += ` WHERE payment_date >= ? AND payment_date < ?`
		args = append(args, w.Start, w.End)
	case WindowLast:
		w := utils.LastMonth(s.now(), s.loc)
		query += ` WHERE payment_date >= ? AND payment_date < ?`
		args = append(args, w.Start, w.End)
	}

	var total float64
	if _, err := s.gw.Get(ctx, "total incoming", &total, query, args...); err != nil {
		return models.TotalIncoming{}, err
	}
	return models.TotalIncoming{Window: window, TotalIncoming: total}, nil
}
