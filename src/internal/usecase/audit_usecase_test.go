package usecase_test

import (
	"context"
	"testing"

	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedProfit books loan interest into the profit pool the same way the
// application does, via a loan payment.
func seedProfit(t *testing.T, f *fixture, memberID uint) float64 {
	t.Helper()

	created := f.Loan.Create(context.Background(), &model.CreateLoanRequest{
		MemberID:        memberID,
		PrincipalAmount: 1000,
		InterestRate:    2,
		TimePeriod:      10,
	})
	require.NoError(t, created.Error)

	paid := f.Loan.Pay(context.Background(), &model.PayLoanRequest{
		LoanID:        created.Data.(*model.LoanResponse).ID,
		PrincipalPaid: 1000,
	})
	require.NoError(t, paid.Error)

	return paid.Data.(*model.PayLoanResponse).Payment.InterestPaid
}

func TestAuditDistributesProfitEqually(t *testing.T) {
	f := newFixture(t)
	first := f.createMember(t, "Asha Devi", "9876543210", 5000)
	second := f.createMember(t, "Binod Kumar", "9876543211", 5000)

	interest := seedProfit(t, f, first.ID)
	require.Equal(t, 20.0, interest)

	result := f.Audit.Run(context.Background())
	require.NoError(t, result.Error)

	response := result.Data.(*model.AuditResponse)
	assert.Equal(t, 20.0, response.TotalProfit)
	assert.Equal(t, 2, response.MemberCount)
	assert.Equal(t, 10.0, response.PerMemberShare)

	// every account grows by the same share
	assert.Equal(t, 5010.0, f.account(t, first.Account.ID).TotalAmount)
	assert.Equal(t, 5010.0, f.account(t, second.Account.ID).TotalAmount)

	org := f.organisation(t)
	assert.Equal(t, 0.0, org.Profit)
}

func TestAuditRequiresProfit(t *testing.T) {
	f := newFixture(t)
	f.createMember(t, "Asha Devi", "9876543210", 5000)

	// force the organisation row into existence with zero profit
	require.NoError(t, f.Transaction.Create(context.Background(), &model.CreateTransactionRequest{
		MemberID:  1,
		AccountID: 1,
		BasicPay:  500,
	}).Error)

	result := f.Audit.Run(context.Background())
	require.Error(t, result.Error)
}

func TestAuditHistoryAccumulates(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 5000)

	seedProfit(t, f, member.ID)
	require.NoError(t, f.Audit.Run(context.Background()).Error)

	history := f.Audit.History(context.Background())
	require.NoError(t, history.Error)
	assert.Len(t, history.Data.([]model.AuditResponse), 1)
}
