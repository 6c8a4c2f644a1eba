package utils

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"patient-records-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_StaysInRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		assert.Len(t, otp, constvars.OTPLength)

		value, err := strconv.Atoi(otp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, constvars.OTPMinValue)
		assert.LessOrEqual(t, value, constvars.OTPMaxValue)
	}
}

func TestSessionJWT_RoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseSessionJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
}

func TestParseSessionJWT_WrongSecret(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	require.NoError(t, err)

	_, err = ParseSessionJWT(token, "other")
	assert.Error(t, err)
}

func TestGenerateRequestID_HasPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateRequestID(), constvars.REQUEST_ID_PREFIX))
}

func TestGenerateObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "patient-documents/P101/1700000000123_scan.png", GenerateObjectKey("P101", "scan.png", now))
}

func TestFormatFileSizeMB(t *testing.T) {
	assert.Equal(t, "0.00", FormatFileSizeMB(0))
	assert.Equal(t, "1.50", FormatFileSizeMB(1572864))
}
