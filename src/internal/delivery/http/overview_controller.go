package http

import (
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OverviewController struct {
	Log     log.Log
	UseCase *usecase.OverviewUseCase
}

func NewOverviewController(useCase *usecase.OverviewUseCase, logger log.Log) *OverviewController {
	return &OverviewController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OverviewController) GetStats(ctx *fiber.Ctx) error {
	result := c.UseCase.GetStats(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Overview stats", fiber.StatusOK, ctx)
}
