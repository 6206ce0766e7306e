package usecase

import (
	"math"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

// Waterfall caps for one monthly collection.
const (
	developmentFeeCap = 20.0
	baseDepositCap    = 500.0
)

// DistributeAmount allocates one lump payment across the ledger in strict
// priority order: penalty, development fee, base deposit, loan interest,
// loan principal, then any surplus as extra deposit. The breakdown fields
// always sum exactly to totalAmount; the function is pure so the allocation
// can be verified independent of persistence.
func DistributeAmount(totalAmount, penaltyProvided float64, loan *entity.Loan) model.DistributionBreakdown {
	breakdown := model.DistributionBreakdown{Total: totalAmount}
	remaining := totalAmount

	breakdown.Penalty = math.Min(remaining, penaltyProvided)
	remaining -= breakdown.Penalty

	breakdown.DevelopmentFee = math.Min(remaining, developmentFeeCap)
	remaining -= breakdown.DevelopmentFee

	breakdown.BaseDeposit = math.Min(remaining, baseDepositCap)
	remaining -= breakdown.BaseDeposit

	if loan != nil && loan.Status == entity.LoanStatusActive && remaining > 0 {
		interestDue := loan.RemainingBalance * loan.InterestRate

		breakdown.LoanInterest = math.Min(remaining, interestDue)
		remaining -= breakdown.LoanInterest

		if remaining > 0 {
			breakdown.LoanPrincipal = math.Min(remaining, loan.RemainingBalance)
			remaining -= breakdown.LoanPrincipal
		}
	}

	if remaining > 0 {
		breakdown.ExtraDeposit = remaining
	}

	return breakdown
}
