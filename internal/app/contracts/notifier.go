package contracts

import (
	"context"
	"time"
)

type OTPNotifier interface {
	SendOTP(ctx context.Context, phone, code string, expiresAt time.Time) error
}
