package middleware

import (
	"strings"

	"bank-portal-service/src/internal/usecase"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/token"
	"bank-portal-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

func unauthorized(ctx *fiber.Ctx, message string) error {
	errObj := httpError.NewUnauthorized()
	errObj.Message = message
	return utils.ResponseError(errObj, ctx)
}

const operatorContextKey = "operator"

// VerifyBearer authenticates every protected route: a well-formed bearer
// token with a valid signature that has not been revoked by logout.
func VerifyBearer(operatorUseCase *usecase.OperatorUseCase, secret string, logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorization := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authorization, "Bearer ") {
			return unauthorized(ctx, "missing bearer token")
		}
		tokenString := strings.TrimPrefix(authorization, "Bearer ")

		claim, err := token.Parse(tokenString, secret)
		if err != nil {
			logger.Info("AuthMiddleware", "rejected token", "error", err.Error())
			return unauthorized(ctx, "invalid or expired token")
		}

		if operatorUseCase.IsTokenRevoked(ctx.Context(), tokenString) {
			return unauthorized(ctx, "token has been revoked")
		}

		ctx.Locals(operatorContextKey, &claim.Metadata)
		return ctx.Next()
	}
}

// GetOperator returns the authenticated operator set by VerifyBearer.
func GetOperator(ctx *fiber.Ctx) *token.Metadata {
	metadata, _ := ctx.Locals(operatorContextKey).(*token.Metadata)
	return metadata
}
