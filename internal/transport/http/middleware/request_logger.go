// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration.
// Errors are rendered by the app ErrorHandler before the status is read.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		dur := time.Since(start)

		log.Infow("http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"ip", c.IP(),
			"request_id", requestID(c),
		)
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	reqID, _ := c.Locals("requestid").(string)
	if reqID == "" {
		reqID = c.Get(fiber.HeaderXRequestID)
	}
	return reqID
}
