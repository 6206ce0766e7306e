package usecase_test

import (
	"testing"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func activeLoan(remaining, rate, emi float64) *entity.Loan {
	return &entity.Loan{
		RemainingBalance: remaining,
		InterestRate:     rate,
		EmiAmount:        emi,
		Status:           entity.LoanStatusActive,
	}
}

func TestDistributeAmountWithoutLoan(t *testing.T) {
	breakdown := usecase.DistributeAmount(570, 0, nil)

	assert.Equal(t, 0.0, breakdown.Penalty)
	assert.Equal(t, 20.0, breakdown.DevelopmentFee)
	assert.Equal(t, 500.0, breakdown.BaseDeposit)
	assert.Equal(t, 0.0, breakdown.LoanInterest)
	assert.Equal(t, 0.0, breakdown.LoanPrincipal)
	assert.Equal(t, 50.0, breakdown.ExtraDeposit)
}

func TestDistributeAmountSmallPayment(t *testing.T) {
	breakdown := usecase.DistributeAmount(10, 0, nil)

	assert.Equal(t, 10.0, breakdown.DevelopmentFee)
	assert.Equal(t, 0.0, breakdown.BaseDeposit)
	assert.Equal(t, 0.0, breakdown.ExtraDeposit)
}

func TestDistributeAmountPenaltyFirst(t *testing.T) {
	breakdown := usecase.DistributeAmount(100, 50, nil)

	assert.Equal(t, 50.0, breakdown.Penalty)
	assert.Equal(t, 20.0, breakdown.DevelopmentFee)
	assert.Equal(t, 30.0, breakdown.BaseDeposit)
}

func TestDistributeAmountPenaltyExceedsTotal(t *testing.T) {
	breakdown := usecase.DistributeAmount(40, 100, nil)

	assert.Equal(t, 40.0, breakdown.Penalty)
	assert.Equal(t, 0.0, breakdown.DevelopmentFee)
}

func TestDistributeAmountWithActiveLoan(t *testing.T) {
	loan := activeLoan(1000, 0.02, 100)
	breakdown := usecase.DistributeAmount(2000, 50, loan)

	assert.Equal(t, 50.0, breakdown.Penalty)
	assert.Equal(t, 20.0, breakdown.DevelopmentFee)
	assert.Equal(t, 500.0, breakdown.BaseDeposit)
	assert.Equal(t, 20.0, breakdown.LoanInterest)
	assert.Equal(t, 1000.0, breakdown.LoanPrincipal)
	assert.Equal(t, 410.0, breakdown.ExtraDeposit)
}

func TestDistributeAmountLoanPartialPrincipal(t *testing.T) {
	loan := activeLoan(5000, 0.02, 500)
	breakdown := usecase.DistributeAmount(1120, 0, loan)

	assert.Equal(t, 20.0, breakdown.DevelopmentFee)
	assert.Equal(t, 500.0, breakdown.BaseDeposit)
	assert.Equal(t, 100.0, breakdown.LoanInterest)
	assert.Equal(t, 500.0, breakdown.LoanPrincipal)
	assert.Equal(t, 0.0, breakdown.ExtraDeposit)
}

func TestDistributeAmountCompletedLoanIgnored(t *testing.T) {
	loan := activeLoan(1000, 0.02, 100)
	loan.Status = entity.LoanStatusCompleted

	breakdown := usecase.DistributeAmount(1000, 0, loan)

	assert.Equal(t, 0.0, breakdown.LoanInterest)
	assert.Equal(t, 0.0, breakdown.LoanPrincipal)
	assert.Equal(t, 480.0, breakdown.ExtraDeposit)
}

func TestDistributeAmountFieldsSumToTotal(t *testing.T) {
	cases := []struct {
		total   float64
		penalty float64
		loan    *entity.Loan
	}{
		{0, 0, nil},
		{15, 0, nil},
		{570, 50, nil},
		{1234.56, 78.9, activeLoan(4321.09, 0.015, 432.11)},
		{99999, 0, activeLoan(250, 0.02, 100)},
	}

	for _, tc := range cases {
		breakdown := usecase.DistributeAmount(tc.total, tc.penalty, tc.loan)
		sum := breakdown.Penalty + breakdown.DevelopmentFee + breakdown.BaseDeposit +
			breakdown.LoanInterest + breakdown.LoanPrincipal + breakdown.ExtraDeposit
		assert.InDelta(t, tc.total, sum, 1e-9)
		assert.Equal(t, tc.total, breakdown.Total)
	}
}
