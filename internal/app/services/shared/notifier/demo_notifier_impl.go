package notifier

import (
	"context"
	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type demoNotifier struct {
	Log *zap.Logger
}

// NewDemoNotifier only logs the delivery; the code itself is never written to the log.
func NewDemoNotifier(logger *zap.Logger) contracts.OTPNotifier {
	return &demoNotifier{Log: logger}
}

func (n *demoNotifier) SendOTP(ctx context.Context, phone, code string, expiresAt time.Time) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	n.Log.Info("demoNotifier.SendOTP delivered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingExpiresAtKey, expiresAt),
	)
	return nil
}
