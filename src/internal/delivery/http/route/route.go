package route

import (
	"bank-portal-service/src/internal/delivery/http"
	"bank-portal-service/src/internal/delivery/http/middleware"
	"bank-portal-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                     *fiber.App
	Log                     log.Log
	MemberController        *http.MemberController
	TransactionController   *http.TransactionController
	LoanController          *http.LoanController
	ReleasedMoneyController *http.ReleasedMoneyController
	AuditController         *http.AuditController
	WithdrawalController    *http.WithdrawalController
	OverviewController      *http.OverviewController
	ReportController        *http.ReportController
	OperatorController      *http.OperatorController
	AuthMiddleware          fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	c.App.Post("/auth/v1/login", c.OperatorController.Login)

	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Post("/auth/v1/logout", c.OperatorController.Logout)

	c.App.Post("/members/v1", c.MemberController.Create)
	c.App.Get("/members/v1", c.MemberController.List)
	c.App.Get("/members/v1/:id", c.MemberController.Get)
	c.App.Put("/members/v1/:id", c.MemberController.Update)
	c.App.Get("/members/v1/:id/transactions", c.TransactionController.MemberTransactions)
	c.App.Get("/members/v1/:id/loans", c.LoanController.MemberLoans)
	c.App.Get("/members/v1/:id/loan-payments", c.LoanController.MemberLoanPayments)
	c.App.Get("/members/v1/:id/released-money", c.ReleasedMoneyController.MemberLogs)

	c.App.Post("/transactions/v1", c.TransactionController.Create)
	c.App.Get("/transactions/v1", c.TransactionController.Search)
	c.App.Delete("/transactions/v1/:id", c.TransactionController.Delete)
	c.App.Post("/transactions/v1/smart-distribute", c.TransactionController.SmartDistribute)

	// static loan paths are registered before the :id parameter route
	c.App.Post("/loans/v1", c.LoanController.Create)
	c.App.Get("/loans/v1", c.LoanController.Search)
	c.App.Get("/loans/v1/loanable-amount", c.LoanController.LoanableAmount)
	c.App.Get("/loans/v1/:id", c.LoanController.Get)
	c.App.Post("/loans/v1/:id/payments", c.LoanController.Pay)
	c.App.Delete("/loan-payments/v1/:id", c.LoanController.DeletePayment)

	c.App.Post("/released-money/v1/release", c.ReleasedMoneyController.Release)
	c.App.Post("/released-money/v1/settle", c.ReleasedMoneyController.Settle)

	c.App.Post("/audits/v1/run", c.AuditController.Run)
	c.App.Get("/audits/v1", c.AuditController.History)

	c.App.Post("/withdrawals/v1", c.WithdrawalController.Create)
	c.App.Get("/withdrawals/v1", c.WithdrawalController.List)

	c.App.Get("/overview/v1", c.OverviewController.GetStats)

	c.App.Get("/reports/v1/monthly-activity", c.ReportController.MonthlyActivity)
	c.App.Get("/reports/v1/expected-collections", c.ReportController.ExpectedCollections)
	c.App.Get("/reports/v1/member-status", c.ReportController.MemberStatus)
}
