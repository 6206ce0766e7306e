package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	Log     log.Log
	UseCase *usecase.ReportUseCase
}

func NewReportController(useCase *usecase.ReportUseCase, logger log.Log) *ReportController {
	return &ReportController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ReportController) MonthlyActivity(ctx *fiber.Ctx) error {
	request := new(model.MonthlyActivityRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("ReportController.MonthlyActivity", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.MonthlyActivity(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Monthly activity", fiber.StatusOK, ctx)
}

func (c *ReportController) ExpectedCollections(ctx *fiber.Ctx) error {
	result := c.UseCase.ExpectedCollections(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Expected collections", fiber.StatusOK, ctx)
}

func (c *ReportController) MemberStatus(ctx *fiber.Ctx) error {
	result := c.UseCase.MemberStatus(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member status", fiber.StatusOK, ctx)
}
