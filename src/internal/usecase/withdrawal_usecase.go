package usecase

import (
	"context"
	"fmt"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/model/converter"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type WithdrawalUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	Validate               *validator.Validate
	WithdrawalRepository   *repository.WithdrawalRepository
	OrganisationRepository *repository.OrganisationRepository
}

func NewWithdrawalUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	withdrawalRepository *repository.WithdrawalRepository,
	organisationRepository *repository.OrganisationRepository,
) *WithdrawalUseCase {
	return &WithdrawalUseCase{
		DB:                     db,
		Log:                    logger,
		Validate:               validate,
		WithdrawalRepository:   withdrawalRepository,
		OrganisationRepository: organisationRepository,
	}
}

// Create spends from one of the organisation's spendable pools. The source
// pool must cover the full amount; the profit pool is never touchable here
// because it belongs to members until an audit distributes it.
func (c *WithdrawalUseCase) Create(ctx context.Context, request *model.CreateWithdrawalRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("WithdrawalUseCase.Create-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	source := entity.WithdrawalSource(request.Source)

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	org, err := c.OrganisationRepository.FindOrCreate(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("WithdrawalUseCase.Create-organisation", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	var available float64
	switch source {
	case entity.WithdrawalSourceAmount:
		available = org.Amount
	case entity.WithdrawalSourcePenalty:
		available = org.Penalty
	}
	if request.Amount > available {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("insufficient funds in %s pool: requested %.2f, available %.2f", request.Source, request.Amount, available)
		result.Error = errObj
		return result
	}

	withdrawal := &entity.OrgWithdrawal{
		Purpose: request.Purpose,
		Amount:  request.Amount,
		Source:  source,
	}
	if err := c.WithdrawalRepository.Create(ctx, tx, withdrawal); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("WithdrawalUseCase.Create-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	var amountDelta, penaltyDelta float64
	if source == entity.WithdrawalSourceAmount {
		amountDelta = -request.Amount
	} else {
		penaltyDelta = -request.Amount
	}
	if err := c.OrganisationRepository.Increment(ctx, tx, amountDelta, penaltyDelta, 0); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("WithdrawalUseCase.Create-pools", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("WithdrawalUseCase.Create-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	org.Amount += amountDelta
	org.Penalty += penaltyDelta
	result.Data = &model.CreateWithdrawalResponse{
		Withdrawal:   converter.WithdrawalToResponse(withdrawal),
		Organisation: converter.OrganisationToResponse(org),
	}
	return result
}

func (c *WithdrawalUseCase) List(ctx context.Context, request *model.SearchWithdrawalRequest) utils.Result {
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

	withdrawals, total, err := c.WithdrawalRepository.Search(ctx, c.DB, request)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("WithdrawalUseCase.List", err.Error(), "query", utils.ConvertString(request))
		return result
	}

	result.Data = model.PageResponse{
		Data:       converter.WithdrawalsToResponses(withdrawals),
		Pagination: model.NewPageMetadata(request.Page, request.Limit, total),
	}
	return result
}
