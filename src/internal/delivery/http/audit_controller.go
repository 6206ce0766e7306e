package http

import (
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	Log     log.Log
	UseCase *usecase.AuditUseCase
}

func NewAuditController(useCase *usecase.AuditUseCase, logger log.Log) *AuditController {
	return &AuditController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuditController) Run(ctx *fiber.Ctx) error {
	result := c.UseCase.Run(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Profit distributed", fiber.StatusCreated, ctx)
}

func (c *AuditController) History(ctx *fiber.Ctx) error {
	result := c.UseCase.History(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Audit history", fiber.StatusOK, ctx)
}
