package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/gateway/messaging"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/repository"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// fixture bundles every usecase over one in-memory database so a test can
// drive the same flows the HTTP layer does.
type fixture struct {
	DB            *gorm.DB
	Member        *usecase.MemberUseCase
	Transaction   *usecase.TransactionUseCase
	Loan          *usecase.LoanUseCase
	ReleasedMoney *usecase.ReleasedMoneyUseCase
	Audit         *usecase.AuditUseCase
	Withdrawal    *usecase.WithdrawalUseCase
	Overview      *usecase.OverviewUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log.InitLogger(viper.New())
	logger := log.GetLogger()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Member{},
		&entity.Account{},
		&entity.Organisation{},
		&entity.TransactionLog{},
		&entity.Loan{},
		&entity.LoanPayment{},
		&entity.ReleasedMoneyLog{},
		&entity.AuditLog{},
		&entity.OrgWithdrawal{},
		&entity.Operator{},
	))

	validate := validator.New()

	memberRepository := repository.NewMemberRepository()
	accountRepository := repository.NewAccountRepository()
	organisationRepository := repository.NewOrganisationRepository()
	transactionRepository := repository.NewTransactionRepository()
	loanRepository := repository.NewLoanRepository()
	loanPaymentRepository := repository.NewLoanPaymentRepository()
	releasedMoneyRepository := repository.NewReleasedMoneyRepository()
	auditRepository := repository.NewAuditRepository()
	withdrawalRepository := repository.NewWithdrawalRepository()

	ledgerProducer := messaging.NewLedgerProducer(nil, logger)

	return &fixture{
		DB: db,
		Member: usecase.NewMemberUseCase(
			db, logger, validate,
			memberRepository, accountRepository, transactionRepository, organisationRepository,
			ledgerProducer,
		),
		Transaction: usecase.NewTransactionUseCase(
			db, logger, validate,
			transactionRepository, memberRepository, accountRepository, organisationRepository,
			loanRepository, loanPaymentRepository,
			ledgerProducer,
		),
		Loan: usecase.NewLoanUseCase(
			db, logger, validate,
			loanRepository, loanPaymentRepository, memberRepository, accountRepository, organisationRepository,
			ledgerProducer,
		),
		ReleasedMoney: usecase.NewReleasedMoneyUseCase(
			db, logger, validate,
			releasedMoneyRepository, accountRepository, loanRepository, organisationRepository,
			ledgerProducer,
		),
		Audit: usecase.NewAuditUseCase(
			db, logger,
			memberRepository, accountRepository, organisationRepository, auditRepository,
			ledgerProducer,
		),
		Withdrawal: usecase.NewWithdrawalUseCase(
			db, logger, validate,
			withdrawalRepository, organisationRepository,
		),
		Overview: usecase.NewOverviewUseCase(
			db, logger,
			memberRepository, accountRepository, loanRepository, organisationRepository, transactionRepository,
		),
	}
}

// createMember registers a member with an opening balance and returns the
// stored member with account preloaded.
func (f *fixture) createMember(t *testing.T, name, mobile string, initialAmount float64) *entity.Member {
	t.Helper()

	result := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:          name,
		Mobile:        mobile,
		InitialAmount: initialAmount,
	})
	require.NoError(t, result.Error)

	response, ok := result.Data.(*model.MemberResponse)
	require.True(t, ok)

	var member entity.Member
	require.NoError(t, f.DB.Preload("Account").First(&member, response.ID).Error)
	return &member
}

func (f *fixture) organisation(t *testing.T) *entity.Organisation {
	t.Helper()

	var org entity.Organisation
	require.NoError(t, f.DB.First(&org, entity.OrganisationID).Error)
	return &org
}

func (f *fixture) account(t *testing.T, id uint) *entity.Account {
	t.Helper()

	var account entity.Account
	require.NoError(t, f.DB.First(&account, id).Error)
	return &account
}
