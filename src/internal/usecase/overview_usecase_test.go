package usecase_test

import (
	"context"
	"testing"
	"time"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewStatsComputesCashInHand(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		BasicPay:       5000,
		DevelopmentFee: 100,
		Penalty:        50,
	}).Error)

	loan := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        member.ID,
		PrincipalAmount: 2000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, loan.Error)

	require.NoError(t, f.ReleasedMoney.Release(context.Background(), &model.ReleaseCashRequest{
		MemberID: member.ID,
		Amount:   1000,
	}).Error)

	result := f.Overview.GetStats(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.OverviewResponse)
	assert.Equal(t, int64(1), response.MemberCount)
	assert.Equal(t, 5000.0, response.TotalMembersAmount)
	assert.Equal(t, int64(1), response.ActiveLoansCount)
	assert.Equal(t, 2000.0, response.TotalLoanedAmount)
	assert.Equal(t, 1000.0, response.TotalReleasedAmount)
	assert.Equal(t, 3000.0, response.LoanableAmount)
	// pools (100 + 50 + 0) plus loanable 3000 minus released 1000
	assert.Equal(t, 2150.0, response.CashInHand)

	// the member deposited this month, so nobody is pending
	assert.Empty(t, response.MembersWithPendingDeposits)
}

func TestOverviewFlagsMembersWithoutCurrentDeposit(t *testing.T) {
	f := newFixture(t)
	paying := f.createMember(t, "Asha Devi", "9876543210", 0)
	lapsed := f.createMember(t, "Binod Kumar", "9876543211", 0)

	// joined last month, never deposited
	require.NoError(t, f.DB.Model(&entity.Member{}).
		Where("id = ?", lapsed.ID).
		Update("created_at", time.Now().AddDate(0, -1, 0)).Error)

	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:  paying.ID,
		AccountID: paying.Account.ID,
		BasicPay:  500,
	}).Error)

	result := f.Overview.GetStats(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.OverviewResponse)
	require.Len(t, response.MembersWithPendingDeposits, 1)

	pending := response.MembersWithPendingDeposits[0]
	assert.Equal(t, "Binod Kumar", pending.Name)
	// only the current month's 520 is due, no fully skipped months yet
	assert.Equal(t, 0, pending.MissedMonths)
	assert.Equal(t, 520.0, pending.SuggestedPayment)
	assert.Equal(t, 520.0, pending.Breakdown.Deposits)
	assert.Equal(t, 0.0, pending.Breakdown.Penalty)
}
