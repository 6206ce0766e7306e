package model

type OrganisationResponse struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Penalty float64 `json:"penalty"`
	Profit  float64 `json:"profit"`
}

type PendingDepositBreakdown struct {
	Deposits float64 `json:"deposits"`
	Penalty  float64 `json:"penalty"`
}

type PendingDepositMember struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	Mobile           string                  `json:"mobile"`
	AccountNumber    string                  `json:"account_number,omitempty"`
	MissedMonths     int                     `json:"missed_months"`
	SuggestedPayment float64                 `json:"suggested_payment"`
	Breakdown        PendingDepositBreakdown `json:"breakdown"`
}

type OverviewResponse struct {
	Organisation               OrganisationResponse   `json:"organisation"`
	MemberCount                int64                  `json:"member_count"`
	TotalMembersAmount         float64                `json:"total_members_amount"`
	ActiveLoansCount           int64                  `json:"active_loans_count"`
	TotalLoanedAmount          float64                `json:"total_loaned_amount"`
	TotalReleasedAmount        float64                `json:"total_released_amount"`
	LoanableAmount             float64                `json:"loanable_amount"`
	CashInHand                 float64                `json:"cash_in_hand"`
	MembersWithPendingDeposits []PendingDepositMember `json:"members_with_pending_deposits"`
}
