package usecase

import (
	"context"
	"time"

	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/model/converter"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"gorm.io/gorm"
)

// Standard monthly obligation: 500 deposit plus 20 development fee, and a
// 50 penalty for every fully missed month.
const (
	monthlyDueWithFee  = 520.0
	monthlyLatePenalty = 50.0
)

type OverviewUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	MemberRepository       *repository.MemberRepository
	AccountRepository      *repository.AccountRepository
	LoanRepository         *repository.LoanRepository
	OrganisationRepository *repository.OrganisationRepository
	TransactionRepository  *repository.TransactionRepository
}

func NewOverviewUseCase(
	db *gorm.DB,
	logger log.Log,
	memberRepository *repository.MemberRepository,
	accountRepository *repository.AccountRepository,
	loanRepository *repository.LoanRepository,
	organisationRepository *repository.OrganisationRepository,
	transactionRepository *repository.TransactionRepository,
) *OverviewUseCase {
	return &OverviewUseCase{
		DB:                     db,
		Log:                    logger,
		MemberRepository:       memberRepository,
		AccountRepository:      accountRepository,
		LoanRepository:         loanRepository,
		OrganisationRepository: organisationRepository,
		TransactionRepository:  transactionRepository,
	}
}

// GetStats assembles the dashboard: organisation pools, aggregate balances,
// the canonical cash-in-hand figure and the list of members behind on their
// monthly deposit with a suggested catch-up payment.
func (c *OverviewUseCase) GetStats(ctx context.Context) utils.Result {
	var result utils.Result

	org, err := c.OrganisationRepository.FindOrCreate(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-organisation", err.Error(), "scope", "overview")
		return result
	}

	memberCount, err := c.MemberRepository.Count(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-count", err.Error(), "scope", "overview")
		return result
	}

	totalFunds, totalReleased, err := c.AccountRepository.SumBalances(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-sums", err.Error(), "scope", "overview")
		return result
	}

	totalLoaned, err := c.LoanRepository.SumActiveRemaining(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-loaned", err.Error(), "scope", "overview")
		return result
	}

	activeLoans, err := c.LoanRepository.CountActive(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-activeLoans", err.Error(), "scope", "overview")
		return result
	}

	pending, err := c.pendingDepositMembers(ctx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OverviewUseCase.GetStats-pending", err.Error(), "scope", "overview")
		return result
	}

	result.Data = &model.OverviewResponse{
		Organisation:               *converter.OrganisationToResponse(org),
		MemberCount:                memberCount,
		TotalMembersAmount:         totalFunds,
		ActiveLoansCount:           activeLoans,
		TotalLoanedAmount:          totalLoaned,
		TotalReleasedAmount:        totalReleased,
		LoanableAmount:             totalFunds - totalLoaned,
		CashInHand:                 cashInHand(org, totalFunds, totalLoaned, totalReleased),
		MembersWithPendingDeposits: pending,
	}
	return result
}

// pendingDepositMembers lists members without a deposit in the current
// calendar month. Every fully skipped month adds a 50 penalty on top of the
// 520 monthly due, and the current month is always owed.
func (c *OverviewUseCase) pendingDepositMembers(ctx context.Context) ([]model.PendingDepositMember, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)

	paidIDs, err := c.TransactionRepository.DistinctMemberIDsSince(ctx, c.DB, monthStart)
	if err != nil {
		return nil, err
	}
	paid := make(map[uint]bool, len(paidIDs))
	for _, id := range paidIDs {
		paid[id] = true
	}

	members, err := c.MemberRepository.FindAll(ctx, c.DB)
	if err != nil {
		return nil, err
	}

	pending := make([]model.PendingDepositMember, 0)
	for i := range members {
		member := &members[i]
		if paid[member.ID] {
			continue
		}
		// members who joined this month owe nothing yet
		if !member.CreatedAt.Before(monthStart) {
			continue
		}

		lastDeposit, err := c.TransactionRepository.LastDepositAt(ctx, c.DB, member.ID)
		if err != nil {
			return nil, err
		}
		anchor := member.CreatedAt
		if lastDeposit != nil {
			anchor = *lastDeposit
		}

		missed := monthsBehind(anchor, now)
		deposits := monthlyDueWithFee * float64(missed+1)
		penalty := monthlyLatePenalty * float64(missed)

		row := model.PendingDepositMember{
			ID:               member.ID,
			Name:             member.Name,
			Mobile:           member.Mobile,
			MissedMonths:     missed,
			SuggestedPayment: deposits + penalty,
			Breakdown: model.PendingDepositBreakdown{
				Deposits: deposits,
				Penalty:  penalty,
			},
		}
		if member.Account != nil {
			row.AccountNumber = member.Account.AccountNumber
		}
		pending = append(pending, row)
	}
	return pending, nil
}

// monthsBehind counts fully elapsed calendar months between the anchor and
// now, excluding the current month which is owed regardless.
func monthsBehind(anchor, now time.Time) int {
	months := (now.Year()-anchor.Year())*12 + int(now.Month()) - int(anchor.Month()) - 1
	if months < 0 {
		return 0
	}
	return months
}
