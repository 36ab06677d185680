package models

// PartyPaymentTotal is one row of the month payment reports.
type PartyPaymentTotal struct {
	PartyID      int64   `json:"party_id"`
	PartyName    string  `json:"party_name"`
	TotalPayment float64 `json:"total_payment"`
}

// PartyOutstanding is one row of the outstanding report.
type PartyOutstanding struct {
	PartyID      int64   `json:"party_id"`
	PartyName    string  `json:"party_name"`
	TotalChallan float64 `json:"total_challan"`
	TotalPaid    float64 `json:"total_paid"`
	Outstanding  float64 `json:"outstanding"`
}

// TotalIncoming is the body of the total incoming report.
type TotalIncoming struct {
	Window        string  `json:"month"`
	TotalIncoming float64 `json:"total_incoming"`
}
