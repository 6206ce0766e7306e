package usecase_test

import (
	"context"
	"testing"

	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseCashWithinLiquidity(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	result := f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   3000,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.ReleasedMoneyResponse)
	assert.Equal(t, 3000.0, response.Account.ReleasedMoney)
	assert.Equal(t, "RELEASE", response.Log.Type)

	account := f.account(t, member.Account.ID)
	assert.Equal(t, 3000.0, account.ReleasedMoney)
	// savings are untouched by an advance
	assert.Equal(t, 5000.0, account.TotalAmount)
}

func TestReleaseCashRejectsBeyondCashInHand(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	// tie most of the cash up in a loan first
	loan := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 4000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, loan.Error)

	result := f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   2000,
	})
	require.Error(t, result.Error)
}

func TestSettleCashPartialWithProfit(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	released := f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   3000,
	})
	require.NoError(t, released.Error)

	result := f.ReleasedMoney.Settle(context.Background(), &model.SettleCashRequest{
		MemberID:   member.ID,
		AmountPaid: 1000,
		Profit:     150,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.ReleasedMoneyResponse)
	assert.Equal(t, "SETTLEMENT", response.Log.Type)
	assert.Equal(t, 150.0, response.Log.Profit)
	assert.Equal(t, 2000.0, response.Account.ReleasedMoney)

	org := f.organisation(t)
	assert.Equal(t, 150.0, org.Profit)
}

func TestSettleCashRejectsOverpayment(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	released := f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   1000,
	})
	require.NoError(t, released.Error)

	result := f.ReleasedMoney.Settle(context.Background(), &model.SettleCashRequest{
		MemberID:   member.ID,
		AmountPaid: 1000.5,
	})
	require.Error(t, result.Error)
}

func TestSettleCashRequiresOutstandingAdvance(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	result := f.ReleasedMoney.Settle(context.Background(), &model.SettleCashRequest{
		MemberID:   member.ID,
		AmountPaid: 100,
	})
	require.Error(t, result.Error)
}

func TestMemberReleasedLogsListsBothDirections(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	require.NoError(t, f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   2000,
	}).Error)
	require.NoError(t, f.ReleasedMoney.Settle(context.Background(), &model.SettleCashRequest{
		MemberID:   member.ID,
		AmountPaid: 2000,
	}).Error)

	result := f.ReleasedMoney.MemberLogs(context.Background(), &model.MemberReleasedLogsRequest{MemberID: member.ID})
	require.NoError(t, result.Error)

	logs := result.Data.([]model.ReleasedMoneyLogResponse)
	assert.Len(t, logs, 2)
}
