package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/utils"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID + timing + timeout context per request.
// Timeout mengikat juga panggilan ke sheet (SheetClient membaca deadline ctx).
func RequestID(logger *zap.Logger, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = utils.UUID()
		} else {
			id = fiberutils.CopyString(id)
		}
		c.Set(HeaderRequestID, id)
		c.Locals("reqid", id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()

		logger.Debug("[REQ]",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
		)
		return err
	}
}
