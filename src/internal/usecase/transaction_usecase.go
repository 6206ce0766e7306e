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

type TransactionUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	Validate               *validator.Validate
	TransactionRepository  *repository.TransactionRepository
	MemberRepository       *repository.MemberRepository
	AccountRepository      *repository.AccountRepository
	OrganisationRepository *repository.OrganisationRepository
	LoanRepository         *repository.LoanRepository
	LoanPaymentRepository  *repository.LoanPaymentRepository
	LedgerProducer         *messaging.LedgerProducer
}

func NewTransactionUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	transactionRepository *repository.TransactionRepository,
	memberRepository *repository.MemberRepository,
	accountRepository *repository.AccountRepository,
	organisationRepository *repository.OrganisationRepository,
	loanRepository *repository.LoanRepository,
	loanPaymentRepository *repository.LoanPaymentRepository,
	ledgerProducer *messaging.LedgerProducer,
) *TransactionUseCase {
	return &TransactionUseCase{
		DB:                     db,
		Log:                    logger,
		Validate:               validate,
		TransactionRepository:  transactionRepository,
		MemberRepository:       memberRepository,
		AccountRepository:      accountRepository,
		OrganisationRepository: organisationRepository,
		LoanRepository:         loanRepository,
		LoanPaymentRepository:  loanPaymentRepository,
		LedgerProducer:         ledgerProducer,
	}
}

// Create records one deposit: the log row, the member's savings balance and
// the organisation pools move in the same transaction.
func (c *TransactionUseCase) Create(ctx context.Context, request *model.CreateTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("TransactionUseCase.Create-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := c.AccountRepository.FindByID(ctx, tx, request.AccountID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("account with id %d not found", request.AccountID)
		result.Error = errObj
		return result
	}
	if account.MemberID != request.MemberID {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("account %d does not belong to member %d", request.AccountID, request.MemberID)
		result.Error = errObj
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Create-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	transactionLog := &entity.TransactionLog{
		MemberID:       request.MemberID,
		AccountID:      request.AccountID,
		BasicPay:       request.BasicPay,
		DevelopmentFee: request.DevelopmentFee,
		Penalty:        request.Penalty,
	}
	if err := c.TransactionRepository.Create(ctx, tx, transactionLog); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Create-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.AccountRepository.IncrementTotalAmount(ctx, tx, request.AccountID, request.BasicPay); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Create-account", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.OrganisationRepository.Increment(ctx, tx, request.DevelopmentFee, request.Penalty, 0); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Create-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Create-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		total := request.BasicPay + request.DevelopmentFee + request.Penalty
		c.LedgerProducer.Publish(model.LedgerEventDepositRecorded, request.MemberID, transactionLog.ID, total)
	}

	result.Data = converter.TransactionToResponse(transactionLog)
	return result
}

// Delete is the exact financial inverse of Create.
func (c *TransactionUseCase) Delete(ctx context.Context, request *model.DeleteTransactionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	transactionLog, err := c.TransactionRepository.FindByID(ctx, tx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transaction with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Delete-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.AccountRepository.IncrementTotalAmount(ctx, tx, transactionLog.AccountID, -transactionLog.BasicPay); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Delete-account", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.OrganisationRepository.Increment(ctx, tx, -transactionLog.DevelopmentFee, -transactionLog.Penalty, 0); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Delete-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.TransactionRepository.Delete(ctx, tx, transactionLog.ID); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Delete-delete", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Delete-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		total := transactionLog.BasicPay + transactionLog.DevelopmentFee + transactionLog.Penalty
		c.LedgerProducer.Publish(model.LedgerEventDepositReversed, transactionLog.MemberID, transactionLog.ID, total)
	}

	result.Data = map[string]interface{}{"message": "transaction deleted successfully"}
	return result
}

func (c *TransactionUseCase) Search(ctx context.Context, request *model.SearchTransactionRequest) utils.Result {
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

	start, end, err := parseDateRange(request.StartDate, request.EndDate)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid date filter: %v", err.Error())
		result.Error = errObj
		return result
	}

	logs, total, err := c.TransactionRepository.Search(ctx, c.DB, request, start, end)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.Search", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = model.PageResponse{
		Data:       converter.TransactionsToResponses(logs),
		Pagination: model.NewPageMetadata(request.Page, request.Limit, total),
	}
	return result
}

func (c *TransactionUseCase) MemberTransactions(ctx context.Context, request *model.MemberTransactionsRequest) utils.Result {
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

	logs, err := c.TransactionRepository.FindByMemberID(ctx, c.DB, request.MemberID, request.Limit, start, end)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.MemberTransactions", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = converter.TransactionsToResponses(logs)
	return result
}

// SmartDistribute applies the waterfall allocation of one lump payment and
// fans the resulting writes out to the transaction log, the loan and the
// organisation in a single transaction.
func (c *TransactionUseCase) SmartDistribute(ctx context.Context, request *model.SmartDistributeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	member, err := c.MemberRepository.FindByID(ctx, tx, request.MemberID)
	if err != nil || member.Account == nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("member with id %d not found", request.MemberID)
		result.Error = errObj
		return result
	}

	activeLoan, err := c.LoanRepository.FindActiveByMemberID(ctx, tx, request.MemberID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-loan", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	breakdown := DistributeAmount(request.TotalAmount, request.PenaltyProvided, activeLoan)

	var paymentRecord *entity.LoanPayment
	if activeLoan != nil && (breakdown.LoanInterest > 0 || breakdown.LoanPrincipal > 0) {
		newRemaining := activeLoan.RemainingBalance - breakdown.LoanPrincipal
		isCompleted := newRemaining <= loanCompletionEpsilon

		paymentRecord = &entity.LoanPayment{
			LoanID:        activeLoan.ID,
			PrincipalPaid: breakdown.LoanPrincipal,
			InterestPaid:  breakdown.LoanInterest,
			// loan-level penalty stays zero: the penalty slice was already
			// consumed at the top of the waterfall
			Penalty:        0,
			TotalPaid:      breakdown.LoanInterest + breakdown.LoanPrincipal,
			RemainingAfter: math.Max(0, newRemaining),
			ExtraPrincipal: math.Max(0, breakdown.LoanPrincipal-activeLoan.EmiAmount),
		}
		if err := c.LoanPaymentRepository.Create(ctx, tx, paymentRecord); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("TransactionUseCase.SmartDistribute-payment", err.Error(), "tx", utils.ConvertString(request))
			return result
		}

		activeLoan.RemainingBalance = math.Max(0, newRemaining)
		activeLoan.TotalInterestPaid += breakdown.LoanInterest
		if isCompleted {
			now := time.Now()
			activeLoan.Status = entity.LoanStatusCompleted
			activeLoan.CompletedAt = &now
		} else {
			activeLoan.Status = entity.LoanStatusActive
			activeLoan.CompletedAt = nil
		}
		if err := c.LoanRepository.Update(ctx, tx, activeLoan); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("TransactionUseCase.SmartDistribute-loanUpdate", err.Error(), "tx", utils.ConvertString(request))
			return result
		}

		if err := c.OrganisationRepository.Increment(ctx, tx, 0, 0, breakdown.LoanInterest); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("TransactionUseCase.SmartDistribute-profit", err.Error(), "tx", utils.ConvertString(request))
			return result
		}
	}

	totalBasePay := breakdown.BaseDeposit + breakdown.ExtraDeposit
	transactionLog := &entity.TransactionLog{
		MemberID:       member.ID,
		AccountID:      member.Account.ID,
		BasicPay:       totalBasePay,
		DevelopmentFee: breakdown.DevelopmentFee,
		Penalty:        breakdown.Penalty,
	}
	if err := c.TransactionRepository.Create(ctx, tx, transactionLog); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-log", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.AccountRepository.IncrementTotalAmount(ctx, tx, member.Account.ID, totalBasePay); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-account", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.OrganisationRepository.Increment(ctx, tx, breakdown.DevelopmentFee, breakdown.Penalty, 0); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-pools", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("TransactionUseCase.SmartDistribute-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventDepositRecorded, member.ID, transactionLog.ID, request.TotalAmount)
	}

	response := &model.SmartDistributeResponse{
		Transaction: converter.TransactionToResponse(transactionLog),
		Breakdown:   breakdown,
	}
	if paymentRecord != nil {
		response.LoanPayment = converter.LoanPaymentToResponse(paymentRecord)
	}
	result.Data = response
	return result
}
