package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WithdrawalController struct {
	Log     log.Log
	UseCase *usecase.WithdrawalUseCase
}

func NewWithdrawalController(useCase *usecase.WithdrawalUseCase, logger log.Log) *WithdrawalController {
	return &WithdrawalController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WithdrawalController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateWithdrawalRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WithdrawalController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Withdrawal recorded", fiber.StatusCreated, ctx)
}

func (c *WithdrawalController) List(ctx *fiber.Ctx) error {
	request := new(model.SearchWithdrawalRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("WithdrawalController.List", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.List(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List withdrawals", fiber.StatusOK, ctx)
}
