package middleware

import (
	"errors"

	"github.com/Rajiv3012/Pet-Adoption-Platform-sub001/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records the latency and outcome of every request, labelled by the
// matched route pattern rather than the raw path.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		done := metrics.RequestStarted()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		done(c.Method(), c.Route().Path, status)
		return err
	}
}
