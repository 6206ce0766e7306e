package usecase

import (
	"context"
	"fmt"
	"strings"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/gateway/messaging"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/model/converter"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	Validate               *validator.Validate
	MemberRepository       *repository.MemberRepository
	AccountRepository      *repository.AccountRepository
	TransactionRepository  *repository.TransactionRepository
	OrganisationRepository *repository.OrganisationRepository
	LedgerProducer         *messaging.LedgerProducer
}

func NewMemberUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	memberRepository *repository.MemberRepository,
	accountRepository *repository.AccountRepository,
	transactionRepository *repository.TransactionRepository,
	organisationRepository *repository.OrganisationRepository,
	ledgerProducer *messaging.LedgerProducer,
) *MemberUseCase {
	return &MemberUseCase{
		DB:                     db,
		Log:                    logger,
		Validate:               validate,
		MemberRepository:       memberRepository,
		AccountRepository:      accountRepository,
		TransactionRepository:  transactionRepository,
		OrganisationRepository: organisationRepository,
		LedgerProducer:         ledgerProducer,
	}
}

// Create registers a member together with their savings account. When an
// opening balance or development fee is supplied, the matching deposit log
// is written in the same transaction so the books start consistent.
func (c *MemberUseCase) Create(ctx context.Context, request *model.CreateMemberRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("MemberUseCase.Create-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	accountNumber := strings.TrimSpace(request.AccountNumber)
	if accountNumber == "" {
		accountNumber = fmt.Sprintf("ACC%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]))
	}
	count, err := c.AccountRepository.CountByAccountNumber(ctx, tx, accountNumber)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.Create-accountNumber", err.Error(), "tx", utils.ConvertString(request))
		return result
	}
	if count > 0 {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("account number %s already exists", accountNumber)
		result.Error = errObj
		return result
	}

	member := &entity.Member{
		Name:        utils.CapitalizeWords(request.Name),
		FathersName: utils.CapitalizeWords(request.FathersName),
		Mobile:      request.Mobile,
		Address:     request.Address,
		Account: &entity.Account{
			AccountNumber: accountNumber,
			TotalAmount:   request.InitialAmount,
		},
	}
	if err := c.MemberRepository.Create(ctx, tx, member); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.Create-insert", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if request.InitialAmount > 0 || request.DevelopmentFee > 0 {
		openingLog := &entity.TransactionLog{
			MemberID:       member.ID,
			AccountID:      member.Account.ID,
			BasicPay:       request.InitialAmount,
			DevelopmentFee: request.DevelopmentFee,
		}
		if err := c.TransactionRepository.Create(ctx, tx, openingLog); err != nil {
			result.Error = httpError.NewInternalServerError()
			c.Log.Error("MemberUseCase.Create-openingLog", err.Error(), "tx", utils.ConvertString(request))
			return result
		}
		if request.DevelopmentFee > 0 {
			if _, err := c.OrganisationRepository.FindOrCreate(ctx, tx); err != nil {
				result.Error = httpError.NewInternalServerError()
				c.Log.Error("MemberUseCase.Create-organisation", err.Error(), "tx", utils.ConvertString(request))
				return result
			}
			if err := c.OrganisationRepository.Increment(ctx, tx, request.DevelopmentFee, 0, 0); err != nil {
				result.Error = httpError.NewInternalServerError()
				c.Log.Error("MemberUseCase.Create-pools", err.Error(), "tx", utils.ConvertString(request))
				return result
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.Create-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if c.LedgerProducer != nil && (request.InitialAmount > 0 || request.DevelopmentFee > 0) {
		c.LedgerProducer.Publish(model.LedgerEventDepositRecorded, member.ID, member.Account.ID, request.InitialAmount+request.DevelopmentFee)
	}

	result.Data = converter.MemberToResponse(member)
	return result
}

func (c *MemberUseCase) Update(ctx context.Context, request *model.UpdateMemberRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	member, err := c.MemberRepository.FindByID(ctx, tx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("member with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	if request.Name != "" {
		member.Name = utils.CapitalizeWords(request.Name)
	}
	if request.FathersName != "" {
		member.FathersName = utils.CapitalizeWords(request.FathersName)
	}
	if request.Mobile != "" {
		member.Mobile = request.Mobile
	}
	if request.Address != "" {
		member.Address = request.Address
	}

	if err := c.MemberRepository.Update(ctx, tx, member); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.Update-save", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.Update-commit", err.Error(), "tx", utils.ConvertString(request))
		return result
	}

	result.Data = converter.MemberToResponse(member)
	return result
}

func (c *MemberUseCase) Get(ctx context.Context, request *model.GetMemberRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	member, err := c.MemberRepository.FindByID(ctx, c.DB, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("member with id %d not found", request.ID)
		result.Error = errObj
		return result
	}

	result.Data = converter.MemberToResponse(member)
	return result
}

func (c *MemberUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	members, err := c.MemberRepository.FindAll(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("MemberUseCase.List", err.Error(), "scope", "members")
		return result
	}

	responses := make([]model.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *converter.MemberToResponse(&members[i]))
	}
	result.Data = responses
	return result
}
