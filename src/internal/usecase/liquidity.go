package usecase

import "bank-portal-service/src/internal/entity"

// loanCompletionEpsilon absorbs float rounding when deciding whether a
// remaining balance counts as fully repaid.
const loanCompletionEpsilon = 0.01

// cashInHand is the canonical liquidity figure: the organisation's three
// pools plus loanable member funds, minus advances already out the door.
// Both the release guard and the overview dashboard use this one formula.
func cashInHand(org *entity.Organisation, totalMemberFunds, totalLoaned, totalReleased float64) float64 {
	loanable := totalMemberFunds - totalLoaned
	return org.Amount + org.Penalty + org.Profit + loanable - totalReleased
}
