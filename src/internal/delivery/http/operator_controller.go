package http

import (
	"strings"

	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OperatorController struct {
	Log     log.Log
	UseCase *usecase.OperatorUseCase
}

func NewOperatorController(useCase *usecase.OperatorUseCase, logger log.Log) *OperatorController {
	return &OperatorController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OperatorController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OperatorController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Login(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login successful", fiber.StatusOK, ctx)
}

func (c *OperatorController) Logout(ctx *fiber.Ctx) error {
	bearer := strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")

	request := &model.LogoutRequest{Token: bearer}
	result := c.UseCase.Logout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Logout successful", fiber.StatusOK, ctx)
}
