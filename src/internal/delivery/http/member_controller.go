package http

import (
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type MemberController struct {
	Log     log.Log
	UseCase *usecase.MemberUseCase
}

func NewMemberController(useCase *usecase.MemberUseCase, logger log.Log) *MemberController {
	return &MemberController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *MemberController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateMemberRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("MemberController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member created", fiber.StatusCreated, ctx)
}

func (c *MemberController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := new(model.UpdateMemberRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("MemberController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = uint(id)

	result := c.UseCase.Update(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Member updated", fiber.StatusOK, ctx)
}

func (c *MemberController) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return utils.ResponseError(err, ctx)
	}

	request := &model.GetMemberRequest{ID: uint(id)}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Get member", fiber.StatusOK, ctx)
}

func (c *MemberController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "List members", fiber.StatusOK, ctx)
}
