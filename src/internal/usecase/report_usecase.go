package usecase

import (
	"context"
	"fmt"
	"time"

	"bank-portal-service/src/internal/model"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// ReportUseCase is the read-only reporting side. It runs raw aggregate SQL
// over the same database the write path uses; nothing here mutates state.
type ReportUseCase struct {
	Sqlx     *sqlx.DB
	Log      log.Log
	Validate *validator.Validate
}

func NewReportUseCase(sqlxDB *sqlx.DB, logger log.Log, validate *validator.Validate) *ReportUseCase {
	return &ReportUseCase{
		Sqlx:     sqlxDB,
		Log:      logger,
		Validate: validate,
	}
}

type activityRow struct {
	MemberID      uint    `db:"member_id"`
	Name          string  `db:"name"`
	Mobile        string  `db:"mobile"`
	AccountNumber string  `db:"account_number"`
	DepositAmount float64 `db:"deposit_amount"`
	LoanAmount    float64 `db:"loan_amount"`
	LoanStatus    string  `db:"loan_status"`
	TotalPaid     float64 `db:"total_paid"`
}

// MonthlyActivity reports per-member money movement for one calendar month:
// deposits in, loan payments in, and new loan principal out.
func (c *ReportUseCase) MonthlyActivity(ctx context.Context, request *model.MonthlyActivityRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	now := time.Now()
	month := request.Month
	year := request.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	const rowsQuery = `
		SELECT m.id AS member_id,
		       m.name AS name,
		       m.mobile AS mobile,
		       COALESCE(a.account_number, '') AS account_number,
		       COALESCE(t.deposit_amount, 0) AS deposit_amount,
		       COALESCE(l.remaining_balance, 0) AS loan_amount,
		       COALESCE(l.status, '') AS loan_status,
		       COALESCE(p.total_paid, 0) AS total_paid
		FROM members m
		LEFT JOIN accounts a ON a.member_id = m.id
		LEFT JOIN (
			SELECT member_id, SUM(basic_pay + development_fee + penalty) AS deposit_amount
			FROM transaction_logs
			WHERE created_at >= ? AND created_at < ?
			GROUP BY member_id
		) t ON t.member_id = m.id
		LEFT JOIN loans l ON l.member_id = m.id AND l.status = 'ACTIVE'
		LEFT JOIN (
			SELECT lo.member_id, SUM(lp.total_paid) AS total_paid
			FROM loan_payments lp
			JOIN loans lo ON lo.id = lp.loan_id
			WHERE lp.created_at >= ? AND lp.created_at < ?
			GROUP BY lo.member_id
		) p ON p.member_id = m.id
		ORDER BY m.name ASC`

	var rows []activityRow
	err := c.Sqlx.SelectContext(ctx, &rows, rowsQuery, monthStart, monthEnd, monthStart, monthEnd)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReportUseCase.MonthlyActivity-rows", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	const withdrawnQuery = `
		SELECT COALESCE(SUM(amount), 0)
		FROM org_withdrawals
		WHERE created_at >= ? AND created_at < ?`

	var withdrawn float64
	if err := c.Sqlx.GetContext(ctx, &withdrawn, withdrawnQuery, monthStart, monthEnd); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReportUseCase.MonthlyActivity-withdrawn", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	response := &model.MonthlyActivityResponse{
		Month: month,
		Year:  year,
		Rows:  make([]model.ActivityRow, 0, len(rows)),
	}
	for _, row := range rows {
		response.Summary.TotalIn += row.DepositAmount + row.TotalPaid
		response.Rows = append(response.Rows, model.ActivityRow{
			MemberID:      row.MemberID,
			Name:          row.Name,
			Mobile:        row.Mobile,
			AccountNumber: row.AccountNumber,
			DepositAmount: row.DepositAmount,
			LoanAmount:    row.LoanAmount,
			LoanStatus:    row.LoanStatus,
			TotalPaid:     row.TotalPaid,
		})
	}
	response.Summary.TotalOut = withdrawn
	response.Summary.Net = response.Summary.TotalIn - response.Summary.TotalOut

	result.Data = response
	return result
}

type collectionRow struct {
	MemberID         uint    `db:"member_id"`
	Name             string  `db:"name"`
	Mobile           string  `db:"mobile"`
	AccountNumber    string  `db:"account_number"`
	EmiAmount        float64 `db:"emi_amount"`
	RemainingBalance float64 `db:"remaining_balance"`
	InterestRate     float64 `db:"interest_rate"`
	HasActiveLoan    bool    `db:"has_active_loan"`
}

// ExpectedCollections projects next month's intake: the 520 standard due per
// member plus, for borrowers, the principal slice and interest on the
// current balance.
func (c *ReportUseCase) ExpectedCollections(ctx context.Context) utils.Result {
	var result utils.Result

	const query = `
		SELECT m.id AS member_id,
		       m.name AS name,
		       m.mobile AS mobile,
		       COALESCE(a.account_number, '') AS account_number,
		       COALESCE(l.emi_amount, 0) AS emi_amount,
		       COALESCE(l.remaining_balance, 0) AS remaining_balance,
		       COALESCE(l.interest_rate, 0) AS interest_rate,
		       l.id IS NOT NULL AS has_active_loan
		FROM members m
		LEFT JOIN accounts a ON a.member_id = m.id
		LEFT JOIN loans l ON l.member_id = m.id AND l.status = 'ACTIVE'
		ORDER BY m.name ASC`

	var rows []collectionRow
	if err := c.Sqlx.SelectContext(ctx, &rows, query); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReportUseCase.ExpectedCollections", err.Error(), "scope", "report")
		return result
	}

	response := &model.ExpectedCollectionsResponse{
		MemberCount: len(rows),
		Collections: make([]model.ExpectedCollectionRow, 0, len(rows)),
	}
	for _, row := range rows {
		var loanDue float64
		if row.HasActiveLoan {
			slice := row.EmiAmount
			if row.RemainingBalance < slice {
				slice = row.RemainingBalance
			}
			loanDue = slice + row.RemainingBalance*row.InterestRate
		}
		total := monthlyDueWithFee + loanDue
		response.TotalExpected += total
		response.Collections = append(response.Collections, model.ExpectedCollectionRow{
			MemberID:      row.MemberID,
			Name:          row.Name,
			Mobile:        row.Mobile,
			AccountNumber: row.AccountNumber,
			BaseAmount:    monthlyDueWithFee,
			LoanAmount:    loanDue,
			HasActiveLoan: row.HasActiveLoan,
			TotalExpected: total,
		})
	}

	result.Data = response
	return result
}

type statusRow struct {
	MemberID         uint    `db:"member_id"`
	Name             string  `db:"name"`
	FathersName      string  `db:"fathers_name"`
	AccountNumber    string  `db:"account_number"`
	RemainingBalance float64 `db:"remaining_balance"`
	EmiAmount        float64 `db:"emi_amount"`
	InterestRate     float64 `db:"interest_rate"`
}

// MemberStatus is the printable roll call: every member with their account
// number, outstanding loan principal and what they owe this month.
func (c *ReportUseCase) MemberStatus(ctx context.Context) utils.Result {
	var result utils.Result

	const query = `
		SELECT m.id AS member_id,
		       m.name AS name,
		       COALESCE(m.fathers_name, '') AS fathers_name,
		       COALESCE(a.account_number, '') AS account_number,
		       COALESCE(l.remaining_balance, 0) AS remaining_balance,
		       COALESCE(l.emi_amount, 0) AS emi_amount,
		       COALESCE(l.interest_rate, 0) AS interest_rate
		FROM members m
		LEFT JOIN accounts a ON a.member_id = m.id
		LEFT JOIN loans l ON l.member_id = m.id AND l.status = 'ACTIVE'
		ORDER BY m.name ASC`

	var rows []statusRow
	if err := c.Sqlx.SelectContext(ctx, &rows, query); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReportUseCase.MemberStatus", err.Error(), "scope", "report")
		return result
	}

	response := &model.MemberStatusResponse{
		Count: len(rows),
		Rows:  make([]model.MemberStatusRow, 0, len(rows)),
	}
	for _, row := range rows {
		expected := monthlyDueWithFee
		if row.RemainingBalance > 0 {
			slice := row.EmiAmount
			if row.RemainingBalance < slice {
				slice = row.RemainingBalance
			}
			expected += slice + row.RemainingBalance*row.InterestRate
		}
		response.Rows = append(response.Rows, model.MemberStatusRow{
			MemberID:               row.MemberID,
			Name:                   row.Name,
			FathersName:            row.FathersName,
			AccountNumber:          row.AccountNumber,
			RemainingLoanPrincipal: row.RemainingBalance,
			ExpectedAmount:         expected,
		})
	}

	result.Data = response
	return result
}
