package middleware

import (
	"esantiye/metrics"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Metrics records request counts and latency per matched route
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Route is only known after routing; unmatched paths share one label
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// Labels outlive the request; fasthttp reuses the method buffer
		method := utils.CopyString(c.Method())

		m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.Latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}
