package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReleasedMoneyController struct {
	Log     log.Log
	UseCase *usecase.ReleasedMoneyUseCase
}

func NewReleasedMoneyController(useCase *usecase.ReleasedMoneyUseCase, logger log.Log) *ReleasedMoneyController {
	return &ReleasedMoneyController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ReleasedMoneyController) Release(ctx *fiber.Ctx) error {
	request := new(model.ReleaseCashRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReleasedMoneyController.Release", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Release(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cash released", fiber.StatusCreated, ctx)
}

func (c *ReleasedMoneyController) Settle(ctx *fiber.Ctx) error {
	request := new(model.SettleCashRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReleasedMoneyController.Settle", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Settle(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Cash settled", fiber.StatusCreated, ctx)
}

func (c *ReleasedMoneyController) MemberLogs(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.MemberReleasedLogsRequest{MemberID: uint(id)}
	result := c.UseCase.MemberLogs(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member released money logs", fiber.StatusOK, ctx)
}
