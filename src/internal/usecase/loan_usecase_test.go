package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
	httpError "bank-portal-service/src/pkg/http-error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLoanComputesSlice(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	result := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 6000,
		InterestRate:    2,
		TimePeriod:      12,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.LoanResponse)
	assert.Equal(t, 500.0, response.EmiAmount)
	assert.Equal(t, 6000.0, response.RemainingBalance)
	assert.Equal(t, 0.02, response.InterestRate)
	assert.Equal(t, string(entity.LoanStatusActive), response.Status)
}

func TestCreateLoanRejectsSecondActive(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	first := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 1000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, first.Error)

	second := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 500,
		InterestRate:    2,
		TimePeriod:      5,
	})
	require.Error(t, second.Error)
}

func TestCreateLoanRejectsOverLoanableFunds(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 1000)

	result := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 5000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.Error(t, result.Error)
}

func TestPayLoanChargesInterestOnPriorBalance(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 6000,
		InterestRate:    2,
		TimePeriod:      12,
	})
	require.NoError(t, created.Error)
	loanID := created.Data.(*model.LoanResponse).ID

	result := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        loanID,
		PrincipalPaid: 500,
		Penalty:       50,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.PayLoanResponse)
	assert.Equal(t, 120.0, response.Payment.InterestPaid)
	assert.Equal(t, 500.0, response.Payment.PrincipalPaid)
	assert.Equal(t, 0.0, response.Payment.ExtraPrincipal)
	assert.Equal(t, 670.0, response.Payment.TotalPaid)
	assert.Equal(t, 5500.0, response.Payment.RemainingAfter)
	assert.Equal(t, 5500.0, response.Loan.RemainingBalance)

	org := f.organisation(t)
	assert.Equal(t, 120.0, org.Profit)
	assert.Equal(t, 50.0, org.Penalty)
}

func TestPayLoanExtraPrincipalShortensLoan(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 6000,
		InterestRate:    2,
		TimePeriod:      12,
	})
	require.NoError(t, created.Error)
	loanID := created.Data.(*model.LoanResponse).ID

	result := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        loanID,
		PrincipalPaid: 1500,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.PayLoanResponse)
	assert.Equal(t, 1500.0, response.Payment.PrincipalPaid)
	assert.Equal(t, 1000.0, response.Payment.ExtraPrincipal)
	assert.Equal(t, 4500.0, response.Loan.RemainingBalance)
}

func TestPayLoanOverpaymentClampsAndCompletes(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 1000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, created.Error)
	loanID := created.Data.(*model.LoanResponse).ID

	result := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        loanID,
		PrincipalPaid: 1200,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.PayLoanResponse)
	// only the outstanding principal is applied, and the extra beyond the
	// fixed slice is measured after that clamp
	assert.Equal(t, 1000.0, response.Payment.PrincipalPaid)
	assert.Equal(t, 900.0, response.Payment.ExtraPrincipal)
	assert.Equal(t, 0.0, response.Loan.RemainingBalance)
	assert.Equal(t, string(entity.LoanStatusCompleted), response.Loan.Status)
	assert.NotNil(t, response.Loan.CompletedAt)

	again := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        loanID,
		PrincipalPaid: 100,
	})
	require.Error(t, again.Error)
	assert.Equal(t, http.StatusBadRequest, again.Error.(*httpError.CommonError).Code)
}

func TestDeleteLoanPaymentReopensLoan(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 1000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, created.Error)
	loanID := created.Data.(*model.LoanResponse).ID

	paid := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        loanID,
		PrincipalPaid: 1000,
		Penalty:       50,
	})
	require.NoError(t, paid.Error)
	payment := paid.Data.(*model.PayLoanResponse).Payment
	require.Equal(t, string(entity.LoanStatusCompleted), paid.Data.(*model.PayLoanResponse).Loan.Status)

	deleted := f.Loan.DeletePayment(context.Background(), &model.DeleteLoanPaymentRequest{ID: payment.ID})
	require.NoError(t, deleted.Error)

	var loan entity.Loan
	require.NoError(t, f.DB.First(&loan, loanID).Error)
	assert.Equal(t, entity.LoanStatusActive, loan.Status)
	assert.Nil(t, loan.CompletedAt)
	assert.Equal(t, 1000.0, loan.RemainingBalance)
	assert.Equal(t, 0.0, loan.TotalInterestPaid)

	org := f.organisation(t)
	assert.Equal(t, 0.0, org.Profit)
	assert.Equal(t, 0.0, org.Penalty)

	var count int64
	require.NoError(t, f.DB.Model(&entity.LoanPayment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLoanableAmountReflectsOutstandingLoans(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 4000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, created.Error)

	result := f.Loan.LoanableAmount(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.LoanableAmountResponse)
	assert.Equal(t, 10000.0, response.TotalMemberFunds)
	assert.Equal(t, 4000.0, response.TotalLoaned)
	assert.Equal(t, 6000.0, response.AvailableFunds)
}
