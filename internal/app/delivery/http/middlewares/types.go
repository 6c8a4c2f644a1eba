package middlewares

import (
	"patient-records-service/internal/app/config"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	CodeLimiter    *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		CodeLimiter: NewRateLimiter(
			logger,
			internalConfig.App.OTPVerifyMaxAttemptsPerMinute,
			time.Minute,
			time.Duration(internalConfig.App.OTPVerifyBlockTimeInSeconds)*time.Second,
		),
	}
}
