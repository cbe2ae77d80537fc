package rweb

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
)

// RequestInfo is a middleware giving basic request / response stats
func RequestInfo(ctx Context) error {
	start := time.Now()

	defer func() {
		logger.Info("request",
			"method", ctx.Request().Method(),
			"path", ctx.Request().Path(),
			"status", strconv.Itoa(ctx.Response().Status()),
			"elapsed", time.Since(start).String(),
		)
	}()

	return ctx.Next()
}
