package usecase

import (
	"context"
	"fmt"

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

// settlementEpsilon tolerates float drift when a member pays back an advance
// to the last paisa.
const settlementEpsilon = 0.01

type ReleasedMoneyUseCase struct {
	DB                      *gorm.DB
	Log                     log.Log
	Validate                *validator.Validate
	ReleasedMoneyRepository *repository.ReleasedMoneyRepository
	AccountRepository       *repository.AccountRepository
	LoanRepository          *repository.LoanRepository
	OrganisationRepository  *repository.OrganisationRepository
	LedgerProducer          *messaging.LedgerProducer
}

func NewReleasedMoneyUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	releasedMoneyRepository *repository.ReleasedMoneyRepository,
	accountRepository *repository.AccountRepository,
	loanRepository *repository.LoanRepository,
	organisationRepository *repository.OrganisationRepository,
	ledgerProducer *messaging.LedgerProducer,
) *ReleasedMoneyUseCase {
	return &ReleasedMoneyUseCase{
		DB:                      db,
		Log:                     logger,
		Validate:                validate,
		ReleasedMoneyRepository: releasedMoneyRepository,
		AccountRepository:       accountRepository,
		LoanRepository:          loanRepository,
		OrganisationRepository:  organisationRepository,
		LedgerProducer:          ledgerProducer,
	}
}

// Release hands out a short-term cash advance. The liquidity guard is
// evaluated inside the transaction so a concurrent release cannot let two
// advances both pass against the same cash.
func (c *ReleasedMoneyUseCase) Release(ctx context.Context, request *model.ReleaseCashRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ReleasedMoneyUseCase.Release-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := c.AccountRepository.FindByMemberID(ctx, tx, request.MemberID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("account for member %d not found", request.MemberID)
		result.Error = errObj
		return result
	}

	org, err := c.OrganisationRepository.FindOrCreate(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	totalFunds, totalReleased, err := c.AccountRepository.SumBalances(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-sums", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	totalLoaned, err := c.LoanRepository.SumActiveRemaining(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-loaned", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	available := cashInHand(org, totalFunds, totalLoaned, totalReleased)
	if request.Amount > available {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("insufficient cash in hand: requested %.2f, available %.2f", request.Amount, available)
		result.Error = errObj
		return result
	}

	releaseLog := &entity.ReleasedMoneyLog{
		AccountID: account.ID,
		Amount:    request.Amount,
		Type:      entity.ReleasedMoneyTypeRelease,
	}
	if err := c.ReleasedMoneyRepository.Create(ctx, tx, releaseLog); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.AccountRepository.IncrementReleasedMoney(ctx, tx, account.ID, request.Amount); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-account", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Release-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventCashReleased, request.MemberID, releaseLog.ID, request.Amount)
	}

	account.ReleasedMoney += request.Amount
	result.Data = &model.ReleasedMoneyResponse{
		Log:     converter.ReleasedMoneyLogToResponse(releaseLog),
		Account: converter.AccountToResponse(account),
	}
	return result
}

// Settle closes out an advance. Any profit charged on top goes to the
// organisation's profit pool rather than back to the member.
func (c *ReleasedMoneyUseCase) Settle(ctx context.Context, request *model.SettleCashRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := c.AccountRepository.FindByMemberID(ctx, tx, request.MemberID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("account for member %d not found", request.MemberID)
		result.Error = errObj
		return result
	}
	if account.ReleasedMoney <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("member %d has no outstanding released money", request.MemberID)
		result.Error = errObj
		return result
	}
	if request.AmountPaid > account.ReleasedMoney+settlementEpsilon {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("settlement %.2f exceeds outstanding released money %.2f", request.AmountPaid, account.ReleasedMoney)
		result.Error = errObj
		return result
	}

	if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Settle-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	settlementLog := &entity.ReleasedMoneyLog{
		AccountID: account.ID,
		Amount:    request.AmountPaid,
		Profit:    request.Profit,
		Type:      entity.ReleasedMoneyTypeSettlement,
	}
	if err := c.ReleasedMoneyRepository.Create(ctx, tx, settlementLog); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Settle-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := c.AccountRepository.IncrementReleasedMoney(ctx, tx, account.ID, -request.AmountPaid); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Settle-account", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if request.Profit > 0 {
		if err := c.OrganisationRepository.Increment(ctx, tx, 0, 0, request.Profit); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("ReleasedMoneyUseCase.Settle-profit", err.Error(), "tx", utils.ConvertString(request))
			return result
		}
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.Settle-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventCashSettled, request.MemberID, settlementLog.ID, request.AmountPaid+request.Profit)
	}

	account.ReleasedMoney -= request.AmountPaid
	result.Data = &model.ReleasedMoneyResponse{
		Log:     converter.ReleasedMoneyLogToResponse(settlementLog),
		Account: converter.AccountToResponse(account),
	}
	return result
}

func (c *ReleasedMoneyUseCase) MemberLogs(ctx context.Context, request *model.MemberReleasedLogsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	account, err := c.AccountRepository.FindByMemberID(ctx, c.DB, request.MemberID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("account for member %d not found", request.MemberID)
		result.Error = errObj
		return result
	}

	logs, err := c.ReleasedMoneyRepository.FindByAccountID(ctx, c.DB, account.ID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("ReleasedMoneyUseCase.MemberLogs", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = converter.ReleasedMoneyLogsToResponses(logs)
	return result
}
