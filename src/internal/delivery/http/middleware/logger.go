package middleware

import (
	"fmt"
	"time"

	"bank-portal-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger records one line per request with method, path, status and
// latency. Slow requests (over one second) are logged separately.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		begin := time.Now()
		err := ctx.Next()
		elapsed := time.Since(begin)

		scope := fmt.Sprintf("%s %s", ctx.Method(), ctx.Path())
		message := fmt.Sprintf("status=%d duration=%s", ctx.Response().StatusCode(), elapsed)
		if elapsed > time.Second {
			logger.Slow("HttpRequest", message, "request", scope)
		} else {
			logger.Info("HttpRequest", message, "request", scope)
		}
		return err
	}
}
