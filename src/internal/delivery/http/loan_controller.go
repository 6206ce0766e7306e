package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type LoanController struct {
	Log     log.Log
	UseCase *usecase.LoanUseCase
}

func NewLoanController(useCase *usecase.LoanUseCase, logger log.Log) *LoanController {
	return &LoanController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *LoanController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateLoanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("LoanController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Loan created", fiber.StatusCreated, ctx)
}

func (c *LoanController) Pay(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.PayLoanRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("LoanController.Pay", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.LoanID = uint(id)

	result := c.UseCase.Pay(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Loan payment recorded", fiber.StatusCreated, ctx)
}

func (c *LoanController) DeletePayment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.DeleteLoanPaymentRequest{ID: uint(id)}
	result := c.UseCase.DeletePayment(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Loan payment deleted", fiber.StatusOK, ctx)
}

func (c *LoanController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.GetLoanRequest{ID: uint(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get loan", fiber.StatusOK, ctx)
}

func (c *LoanController) Search(ctx *fiber.Ctx) error {
	request := new(model.SearchLoanRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("LoanController.Search", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Search(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Search loans", fiber.StatusOK, ctx)
}

func (c *LoanController) MemberLoans(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.MemberLoansRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("LoanController.MemberLoans", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.MemberID = uint(id)

	result := c.UseCase.MemberLoans(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member loans", fiber.StatusOK, ctx)
}

func (c *LoanController) MemberLoanPayments(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.MemberLoanPaymentsRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("LoanController.MemberLoanPayments", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.MemberID = uint(id)

	result := c.UseCase.MemberLoanPayments(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member loan payments", fiber.StatusOK, ctx)
}

func (c *LoanController) LoanableAmount(ctx *fiber.Ctx) error {
	result := c.UseCase.LoanableAmount(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Loanable amount", fiber.StatusOK, ctx)
}
