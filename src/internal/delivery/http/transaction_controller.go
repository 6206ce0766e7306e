package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionController struct {
	Log     log.Log
	UseCase *usecase.TransactionUseCase
}

func NewTransactionController(useCase *usecase.TransactionUseCase, logger log.Log) *TransactionController {
	return &TransactionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TransactionController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateTransactionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction recorded", fiber.StatusCreated, ctx)
}

func (c *TransactionController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.DeleteTransactionRequest{ID: uint(id)}
	result := c.UseCase.Delete(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transaction deleted", fiber.StatusOK, ctx)
}

func (c *TransactionController) Search(ctx *fiber.Ctx) error {
	request := new(model.SearchTransactionRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("TransactionController.Search", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Search(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Search transactions", fiber.StatusOK, ctx)
}

func (c *TransactionController) MemberTransactions(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.MemberTransactionsRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("TransactionController.MemberTransactions", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.MemberID = uint(id)

	result := c.UseCase.MemberTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member transactions", fiber.StatusOK, ctx)
}

func (c *TransactionController) SmartDistribute(ctx *fiber.Ctx) error {
	request := new(model.SmartDistributeRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TransactionController.SmartDistribute", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.SmartDistribute(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment distributed", fiber.StatusCreated, ctx)
}
