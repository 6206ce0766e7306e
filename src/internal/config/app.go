package config

import (
	"time"

	"bank-portal-service/src/internal/delivery/http"
	"bank-portal-service/src/internal/delivery/http/middleware"
	"bank-portal-service/src/internal/delivery/http/route"
	"bank-portal-service/src/internal/gateway/messaging"
	"bank-portal-service/src/internal/repository"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/databases/mysql"
	kafkaPkg "bank-portal-service/src/pkg/kafka"
	"bank-portal-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       *mysql.Database
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafkaPkg.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	memberRepository := repository.NewMemberRepository()
	accountRepository := repository.NewAccountRepository()
	organisationRepository := repository.NewOrganisationRepository()
	transactionRepository := repository.NewTransactionRepository()
	loanRepository := repository.NewLoanRepository()
	loanPaymentRepository := repository.NewLoanPaymentRepository()
	releasedMoneyRepository := repository.NewReleasedMoneyRepository()
	auditRepository := repository.NewAuditRepository()
	withdrawalRepository := repository.NewWithdrawalRepository()
	operatorRepository := repository.NewOperatorRepository()

	ledgerProducer := messaging.NewLedgerProducer(config.Producer, config.Log)

	// setup use cases
	memberUseCase := usecase.NewMemberUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		memberRepository,
		accountRepository,
		transactionRepository,
		organisationRepository,
		ledgerProducer,
	)
	transactionUseCase := usecase.NewTransactionUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		transactionRepository,
		memberRepository,
		accountRepository,
		organisationRepository,
		loanRepository,
		loanPaymentRepository,
		ledgerProducer,
	)
	loanUseCase := usecase.NewLoanUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		loanRepository,
		loanPaymentRepository,
		memberRepository,
		accountRepository,
		organisationRepository,
		ledgerProducer,
	)
	releasedMoneyUseCase := usecase.NewReleasedMoneyUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		releasedMoneyRepository,
		accountRepository,
		loanRepository,
		organisationRepository,
		ledgerProducer,
	)
	auditUseCase := usecase.NewAuditUseCase(
		config.DB.Gorm,
		config.Log,
		memberRepository,
		accountRepository,
		organisationRepository,
		auditRepository,
		ledgerProducer,
	)
	withdrawalUseCase := usecase.NewWithdrawalUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		withdrawalRepository,
		organisationRepository,
	)
	overviewUseCase := usecase.NewOverviewUseCase(
		config.DB.Gorm,
		config.Log,
		memberRepository,
		accountRepository,
		loanRepository,
		organisationRepository,
		transactionRepository,
	)
	reportUseCase := usecase.NewReportUseCase(config.DB.Sqlx, config.Log, config.Validate)

	jwtSecret := config.Config.GetString("jwt.secret")
	jwtIssuer := config.Config.GetString("jwt.issuer")
	tokenTTL := time.Duration(config.Config.GetInt("jwt.ttl_minutes")) * time.Minute
	operatorUseCase := usecase.NewOperatorUseCase(
		config.DB.Gorm,
		config.Log,
		config.Validate,
		operatorRepository,
		config.Redis,
		jwtSecret,
		jwtIssuer,
		tokenTTL,
	)

	// setup controllers
	memberController := http.NewMemberController(memberUseCase, config.Log)
	transactionController := http.NewTransactionController(transactionUseCase, config.Log)
	loanController := http.NewLoanController(loanUseCase, config.Log)
	releasedMoneyController := http.NewReleasedMoneyController(releasedMoneyUseCase, config.Log)
	auditController := http.NewAuditController(auditUseCase, config.Log)
	withdrawalController := http.NewWithdrawalController(withdrawalUseCase, config.Log)
	overviewController := http.NewOverviewController(overviewUseCase, config.Log)
	reportController := http.NewReportController(reportUseCase, config.Log)
	operatorController := http.NewOperatorController(operatorUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(operatorUseCase, jwtSecret, config.Log)

	routeConfig := route.RouteConfig{
		App:                     config.App,
		Log:                     config.Log,
		MemberController:        memberController,
		TransactionController:   transactionController,
		LoanController:          loanController,
		ReleasedMoneyController: releasedMoneyController,
		AuditController:         auditController,
		WithdrawalController:    withdrawalController,
		OverviewController:      overviewController,
		ReportController:        reportController,
		OperatorController:      operatorController,
		AuthMiddleware:          authMiddleware,
	}
	routeConfig.Setup()
}
