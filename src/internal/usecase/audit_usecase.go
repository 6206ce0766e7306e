package usecase

import (
	"context"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/gateway/messaging"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/model/converter"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"gorm.io/gorm"
)

type AuditUseCase struct {
	DB                     *gorm.DB
	Log                    log.Log
	MemberRepository       *repository.MemberRepository
	AccountRepository      *repository.AccountRepository
	OrganisationRepository *repository.OrganisationRepository
	AuditRepository        *repository.AuditRepository
	LedgerProducer         *messaging.LedgerProducer
}

func NewAuditUseCase(
	db *gorm.DB,
	logger log.Log,
	memberRepository *repository.MemberRepository,
	accountRepository *repository.AccountRepository,
	organisationRepository *repository.OrganisationRepository,
	auditRepository *repository.AuditRepository,
	ledgerProducer *messaging.LedgerProducer,
) *AuditUseCase {
	return &AuditUseCase{
		DB:                     db,
		Log:                    logger,
		MemberRepository:       memberRepository,
		AccountRepository:      accountRepository,
		OrganisationRepository: organisationRepository,
		AuditRepository:        auditRepository,
		LedgerProducer:         ledgerProducer,
	}
}

// Run distributes the accumulated profit pool equally across every member
// account and zeroes the pool, all inside one transaction. An equal single
// UPDATE fan-out keeps the run O(1) statements regardless of member count.
func (c *AuditUseCase) Run(ctx context.Context) utils.Result {
	var result utils.Result

	tx := c.DB.WithContext(ctx).Begin()
	defer tx.Rollback()

	org, err := c.OrganisationRepository.FindOrCreate(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-organisation", err.Error(), "scope", "audit")
		return result
	}
	if org.Profit <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "no profit available to distribute"
		result.Error = errObj
		return result
	}

	memberCount, err := c.MemberRepository.Count(ctx, tx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-count", err.Error(), "scope", "audit")
		return result
	}
	if memberCount == 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "no members to distribute profit to"
		result.Error = errObj
		return result
	}

	perMemberShare := org.Profit / float64(memberCount)

	if err := c.AccountRepository.CreditAll(ctx, tx, perMemberShare); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-credit", err.Error(), "scope", "audit")
		return result
	}

	auditLog := &entity.AuditLog{
		TotalProfit:    org.Profit,
		MemberCount:    int(memberCount),
		PerMemberShare: perMemberShare,
	}
	if err := c.AuditRepository.Create(ctx, tx, auditLog); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-insert", err.Error(), "scope", "audit")
		return result
	}

	if err := c.OrganisationRepository.ResetProfit(ctx, tx); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-reset", err.Error(), "scope", "audit")
		return result
	}

	if err := tx.Commit().Error; err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.Run-commit", err.Error(), "scope", "audit")
		return result
	}

	if c.LedgerProducer != nil {
		c.LedgerProducer.Publish(model.LedgerEventAuditCompleted, 0, auditLog.ID, auditLog.TotalProfit)
	}

	result.Data = converter.AuditToResponse(auditLog)
	return result
}

func (c *AuditUseCase) History(ctx context.Context) utils.Result {
	var result utils.Result

	audits, err := c.AuditRepository.FindAll(ctx, c.DB)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("AuditUseCase.History", err.Error(), "scope", "audit")
		return result
	}

	result.Data = converter.AuditsToResponses(audits)
	return result
}
