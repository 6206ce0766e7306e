package utils

import (
	httpError "bank-portal-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type httpResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type httpErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Response writes a success payload.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(httpResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError maps a usecase error to its HTTP status. Unknown error
// types are reported as 500 without leaking internals.
func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(httpErrorResponse{
			Success: false,
			Error:   commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(httpErrorResponse{
		Success: false,
		Error:   "internal server error",
	})
}
