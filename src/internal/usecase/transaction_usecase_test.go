package usecase_test

import (
	"context"
	"testing"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionMovesBalances(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	result := f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		BasicPay:       500,
		DevelopmentFee: 20,
		Penalty:        50,
	})
	require.NoError(t, result.Error)

	account := f.account(t, member.Account.ID)
	assert.Equal(t, 500.0, account.TotalAmount)

	org := f.organisation(t)
	assert.Equal(t, 20.0, org.Amount)
	assert.Equal(t, 50.0, org.Penalty)
	assert.Equal(t, 0.0, org.Profit)
}

func TestCreateTransactionRejectsForeignAccount(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)
	other := f.createMember(t, "Binod Kumar", "9876543211", 0)

	result := f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:  member.ID,
		AccountID: other.Account.ID,
		BasicPay:  500,
	})
	require.Error(t, result.Error)
}

func TestDeleteTransactionIsExactInverse(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	created := f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		BasicPay:       500,
		DevelopmentFee: 20,
		Penalty:        50,
	})
	require.NoError(t, created.Error)
	response := created.Data.(*model.TransactionResponse)

	deleted := f.Transaction.Delete(context.Background(), &model.DeleteTransactionRequest{ID: response.ID})
	require.NoError(t, deleted.Error)

	account := f.account(t, member.Account.ID)
	assert.Equal(t, 0.0, account.TotalAmount)

	org := f.organisation(t)
	assert.Equal(t, 0.0, org.Amount)
	assert.Equal(t, 0.0, org.Penalty)

	var count int64
	require.NoError(t, f.DB.Model(&entity.TransactionLog{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	f := newFixture(t)
	f.createMember(t, "Asha Devi", "9876543210", 0)

	result := f.Transaction.Delete(context.Background(), &model.DeleteTransactionRequest{ID: 9999})
	require.Error(t, result.Error)
}

func TestSmartDistributeWithoutLoan(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	result := f.Transaction.SmartDistribute(context.Background(), &model.SmartDistributeRequest{
		MemberID:        member.ID,
		TotalAmount:     570,
		PenaltyProvided: 0,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.SmartDistributeResponse)
	assert.Nil(t, response.LoanPayment)
	assert.Equal(t, 20.0, response.Breakdown.DevelopmentFee)
	assert.Equal(t, 500.0, response.Breakdown.BaseDeposit)
	assert.Equal(t, 50.0, response.Breakdown.ExtraDeposit)

	// base and extra deposit both land on the member's account
	account := f.account(t, member.Account.ID)
	assert.Equal(t, 550.0, account.TotalAmount)

	org := f.organisation(t)
	assert.Equal(t, 20.0, org.Amount)
}

func TestSmartDistributePaysDownActiveLoan(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 10000)

	loanResult := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 1000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, loanResult.Error)
	loanResponse := loanResult.Data.(*model.LoanResponse)

	result := f.Transaction.SmartDistribute(context.Background(), &model.SmartDistributeRequest{
		MemberID:        member.ID,
		TotalAmount:     2000,
		PenaltyProvided: 50,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.SmartDistributeResponse)
	require.NotNil(t, response.LoanPayment)
	assert.Equal(t, 20.0, response.Breakdown.LoanInterest)
	assert.Equal(t, 1000.0, response.Breakdown.LoanPrincipal)
	assert.Equal(t, 410.0, response.Breakdown.ExtraDeposit)
	// the penalty slice is booked on the deposit, never on the loan payment
	assert.Equal(t, 0.0, response.LoanPayment.Penalty)

	var loan entity.Loan
	require.NoError(t, f.DB.First(&loan, loanResponse.ID).Error)
	assert.Equal(t, entity.LoanStatusCompleted, loan.Status)
	assert.NotNil(t, loan.CompletedAt)
	assert.Equal(t, 0.0, loan.RemainingBalance)

	org := f.organisation(t)
	assert.Equal(t, 20.0, org.Profit)
	assert.Equal(t, 50.0, org.Penalty)
	assert.Equal(t, 20.0, org.Amount)

	account := f.account(t, member.Account.ID)
	assert.Equal(t, 10000.0+500+410, account.TotalAmount)
}

func TestSearchTransactionsPaginates(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	for i := 0; i < 3; i++ {
		result := f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
			MemberID:  member.ID,
			AccountID: member.Account.ID,
			BasicPay:  500,
		})
		require.NoError(t, result.Error)
	}

	result := f.Transaction.Search(context.Background(), &model.SearchTransactionRequest{
		Name:  "asha",
		Page:  1,
		Limit: 2,
	})
	require.NoError(t, result.Error)

	page := result.Data.(model.PageResponse)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	rows := page.Data.([]model.TransactionResponse)
	assert.Len(t, rows, 2)
}
