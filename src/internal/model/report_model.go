package model

type MonthlyActivityRequest struct {
	Month int `query:"month" validate:"min=0,max=12"`
	Year  int `query:"year" validate:"min=0"`
}

type ActivitySummary struct {
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
	Net      float64 `json:"net"`
}

type ActivityRow struct {
	MemberID      uint    `json:"member_id"`
	Name          string  `json:"name"`
	Mobile        string  `json:"mobile"`
	AccountNumber string  `json:"account_number"`
	DepositAmount float64 `json:"deposit_amount"`
	LoanAmount    float64 `json:"loan_amount"`
	LoanStatus    string  `json:"loan_status"`
	TotalPaid     float64 `json:"total_paid"`
}

type MonthlyActivityResponse struct {
	Month   int             `json:"month"`
	Year    int             `json:"year"`
	Summary ActivitySummary `json:"summary"`
	Rows    []ActivityRow   `json:"rows"`
}

type ExpectedCollectionRow struct {
	MemberID      uint    `json:"member_id"`
	Name          string  `json:"name"`
	Mobile        string  `json:"mobile"`
	AccountNumber string  `json:"account_number"`
	BaseAmount    float64 `json:"base_amount"`
	LoanAmount    float64 `json:"loan_amount"`
	HasActiveLoan bool    `json:"has_active_loan"`
	TotalExpected float64 `json:"total_expected"`
}

type ExpectedCollectionsResponse struct {
	TotalExpected float64                 `json:"total_expected"`
	MemberCount   int                     `json:"member_count"`
	Collections   []ExpectedCollectionRow `json:"collections"`
}

type MemberStatusRow struct {
	MemberID               uint    `json:"member_id"`
	Name                   string  `json:"name"`
	FathersName            string  `json:"fathers_name"`
	AccountNumber          string  `json:"account_number"`
	RemainingLoanPrincipal float64 `json:"remaining_loan_principal"`
	ExpectedAmount         float64 `json:"expected_amount"`
}

type MemberStatusResponse struct {
	Count int               `json:"count"`
	Rows  []MemberStatusRow `json:"rows"`
}
