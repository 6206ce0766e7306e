package usecase_test

import (
	"context"
	"testing"

	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalSpendsFromChosenPool(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		BasicPay:       500,
		DevelopmentFee: 100,
		Penalty:        80,
	}).Error)

	result := f.Withdrawal.Create(context.Background(), &model.CreateWithdrawalRequest{
		Purpose: "stationery",
		Amount:  60,
		Source:  "PENALTY",
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.CreateWithdrawalResponse)
	assert.Equal(t, 100.0, response.Organisation.Amount)
	assert.Equal(t, 20.0, response.Organisation.Penalty)

	org := f.organisation(t)
	assert.Equal(t, 100.0, org.Amount)
	assert.Equal(t, 20.0, org.Penalty)
}

func TestWithdrawalRejectsOverdraw(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		DevelopmentFee: 50,
	}).Error)

	result := f.Withdrawal.Create(context.Background(), &model.CreateWithdrawalRequest{
		Purpose: "rent",
		Amount:  500,
		Source:  "AMOUNT",
	})
	require.Error(t, result.Error)
}

func TestWithdrawalRejectsUnknownSource(t *testing.T) {
	f := newFixture(t)

	result := f.Withdrawal.Create(context.Background(), &model.CreateWithdrawalRequest{
		Purpose: "rent",
		Amount:  10,
		Source:  "PROFIT",
	})
	require.Error(t, result.Error)
}

func TestWithdrawalListPaginates(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		DevelopmentFee: 100,
	}).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.Withdrawal.Create(context.Background(), &model.CreateWithdrawalRequest{
			Purpose: "expense",
			Amount:  10,
			Source:  "AMOUNT",
		}).Error)
	}

	result := f.Withdrawal.List(context.Background(), &model.SearchWithdrawalRequest{Page: 1, Limit: 2})
	require.NoError(t, result.Error)

	page := result.Data.(model.PageResponse)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Len(t, page.Data.([]model.WithdrawalResponse), 2)
}
