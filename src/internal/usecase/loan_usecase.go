package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/gateway/messaging"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/model/converter"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type LoanUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	Validate               *validator.Validate
	LoanRepository         *repository.LoanRepository
	LoanPaymentRepository  *repository.LoanPaymentRepository
	MemberRepository       *repository.MemberRepository
	AccountRepository      *repository.AccountRepository
	OrganisationRepository *repository.OrganisationRepository
	LedgerProducer         *messaging.LedgerProducer
}

func NewLoanUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	loanRepository *repository.LoanRepository,
	loanPaymentRepository *repository.LoanPaymentRepository,
	memberRepository *repository.MemberRepository,
	accountRepository *repository.AccountRepository,
	organisationRepository *repository.OrganisationRepository,
	ledgerProducer *messaging.LedgerProducer,
) *LoanUseCase {
	return &LoanUseCase{
		DB:                     db,
		Log:                    logger,
		Validate:               validate,
		LoanRepository:         loanRepository,
		LoanPaymentRepository:  loanPaymentRepository,
		MemberRepository:       memberRepository,
		AccountRepository:      accountRepository,
		OrganisationRepository: organisationRepository,
		LedgerProducer:         ledgerProducer,
	}
}

// Create issues a new loan. The fixed principal slice is principal divided by
// the number of months; interest is not part of the slice because it is
// recomputed on the outstanding balance at every payment.
func (c *LoanUseCase) Create(ctx context.Context, request *model.CreateLoanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("LoanUseCase.Create-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := c.MemberRepository.FindByID(ctx, tx, request.MemberID); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("member with id %d not found", request.MemberID)
		result.Error = errObj
		return result
	}

	existing, err := c.LoanRepository.FindActiveByMemberID(ctx, tx, request.MemberID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Create-activeLookup", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	if existing != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("member %d already has an active loan", request.MemberID)
		result.Error = errObj
		return result
	}

	totalFunds, _, err := c.AccountRepository.SumBalances(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Create-sums", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	totalLoaned, err := c.LoanRepository.SumActiveRemaining(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Create-loaned", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	available := totalFunds - totalLoaned
	if request.PrincipalAmount > available {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("insufficient loanable funds: requested %.2f, available %.2f", request.PrincipalAmount, available)
		result.Error = errObj
		return result
	}

	loan := &entity.Loan{
		MemberID:         request.MemberID,
		PrincipalAmount:  request.PrincipalAmount,
		InterestRate:     request.InterestRate / 100,
		TimePeriod:       request.TimePeriod,
		EmiAmount:        request.PrincipalAmount / float64(request.TimePeriod),
		RemainingBalance: request.PrincipalAmount,
		Status:           entity.LoanStatusActive,
	}
	if err := c.LoanRepository.Create(ctx, tx, loan); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Create-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Create-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventLoanCreated, loan.MemberID, loan.ID, loan.PrincipalAmount)
	}

	result.Data = converter.LoanToResponse(loan)
	return result
}

// Pay records one EMI. Interest is charged on the balance as it stood before
// this payment; anything paid beyond the fixed slice shortens the loan.
func (c *LoanUseCase) Pay(ctx context.Context, request *model.PayLoanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	loan, err := c.LoanRepository.FindByID(ctx, tx, request.LoanID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("loan with id %d not found", request.LoanID)
		result.Error = errObj
		return result
	}
	if loan.Status != entity.LoanStatusActive {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("loan %d is not active", loan.ID)
		result.Error = errObj
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Pay-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	interest := loan.RemainingBalance * loan.InterestRate
	principalApplied := math.Min(request.PrincipalPaid, loan.RemainingBalance)
	extraPrincipal := math.Max(0, principalApplied-math.Min(loan.EmiAmount, loan.RemainingBalance))
	newRemaining := loan.RemainingBalance - principalApplied

	payment := &entity.LoanPayment{
		LoanID:         loan.ID,
		PrincipalPaid:  principalApplied,
		ExtraPrincipal: extraPrincipal,
		InterestPaid:   interest,
		Penalty:        request.Penalty,
		TotalPaid:      principalApplied + interest + request.Penalty,
		RemainingAfter: math.Max(0, newRemaining),
	}
	if err := c.LoanPaymentRepository.Create(ctx, tx, payment); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Pay-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	loan.RemainingBalance = math.Max(0, newRemaining)
	loan.TotalInterestPaid += interest
	if newRemaining <= loanCompletionEpsilon {
		now := time.Now()
		loan.Status = entity.LoanStatusCompleted
		loan.CompletedAt = &now
	}
	if err := c.LoanRepository.Update(ctx, tx, loan); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Pay-update", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.OrganisationRepository.Increment(ctx, tx, 0, request.Penalty, interest); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Pay-pools", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Pay-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventLoanPaymentRecorded, loan.MemberID, payment.ID, payment.TotalPaid)
	}

	result.Data = &model.PayLoanResponse{
		Payment: converter.LoanPaymentToResponse(payment),
		Loan:    converter.LoanToResponse(loan),
	}
	return result
}

// DeletePayment reverses a recorded payment: the loan balance grows back by
// the principal, interest and penalty leave the organisation pools, and the
// loan is forced ACTIVE again since its balance is no longer settled.
func (c *LoanUseCase) DeletePayment(ctx context.Context, request *model.DeleteLoanPaymentRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	payment, err := c.LoanPaymentRepository.FindWithLoan(ctx, tx, request.ID)
	if err != nil || payment.Loan == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("loan payment with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.DeletePayment-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	loan := payment.Loan
	loan.RemainingBalance += payment.PrincipalPaid
	loan.TotalInterestPaid -= payment.InterestPaid
	loan.Status = entity.LoanStatusActive
	loan.CompletedAt = nil
	if err := c.LoanRepository.Update(ctx, tx, loan); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.DeletePayment-loan", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.OrganisationRepository.Increment(ctx, tx, 0, -payment.Penalty, -payment.InterestPaid); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.DeletePayment-pools", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.LoanPaymentRepository.Delete(ctx, tx, payment.ID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.DeletePayment-delete", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.DeletePayment-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventLoanPaymentReversed, loan.MemberID, payment.ID, payment.TotalPaid)
	}

	result.Data = map[string]interface{}{"message": "loan payment deleted successfully"}
	return result
}

func (c *LoanUseCase) Get(ctx context.Context, request *model.GetLoanRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	loan, err := c.LoanRepository.FindWithPayments(ctx, c.DB, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("loan with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	result.Data = converter.LoanToResponse(loan)
	return result
}

func (c *LoanUseCase) MemberLoans(ctx context.Context, request *model.MemberLoansRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	loans, err := c.LoanRepository.FindByMemberID(ctx, c.DB, request.MemberID, request.Limit)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.MemberLoans", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = converter.LoansToResponses(loans)
	return result
}

func (c *LoanUseCase) Search(ctx context.Context, request *model.SearchLoanRequest) utils.Result {
	var result utils.Result

	if request.Page <= 0 {
		request.Page = 1
	}
	if request.Limit <= 0 {
		request.Limit = 20
	}
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	loans, total, err := c.LoanRepository.Search(ctx, c.DB, request)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.Search", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = model.PageResponse{
		Data:       converter.LoansToResponses(loans),
		Pagination: model.NewPageMetadata(request.Page, request.Limit, total),
	}
	return result
}

func (c *LoanUseCase) MemberLoanPayments(ctx context.Context, request *model.MemberLoanPaymentsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid date filter: %v", err.Error())
		result.Error = errObj
		return result
	}

	payments, err := c.LoanPaymentRepository.FindByMemberID(ctx, c.DB, request.MemberID, start, end)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.MemberLoanPayments", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = converter.LoanPaymentsToResponses(payments)
	return result
}

// LoanableAmount reports how much of the pooled member savings is still free
// to lend out.
func (c *LoanUseCase) LoanableAmount(ctx context.Context) utils.Result {
	var result utils.Result

	totalFunds, _, err := c.AccountRepository.SumBalances(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.LoanableAmount-sums", err.Error(), "scope", "loanable")
		return result
	}
	totalLoaned, err := c.LoanRepository.SumActiveRemaining(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("LoanUseCase.LoanableAmount-loaned", err.Error(), "scope", "loanable")
		return result
	}

	result.Data = &model.LoanableAmountResponse{
		TotalMemberFunds: totalFunds,
		TotalLoaned:      totalLoaned,
		AvailableFunds:   totalFunds - totalLoaned,
	}
	return result
}
