package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"patient-records-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTime int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.SessionIDClaimKey: sessionID,
		"exp":                       time.Now().Add(time.Duration(jwtExpiryTime) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseSessionJWT returns the session id carried by a token issued by GenerateSessionJWT.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}

	sessionID, ok := claims[constvars.SessionIDClaimKey].(string)
	if !ok || sessionID == "" {
		return "", errors.New("session token has no session id")
	}

	return sessionID, nil
}

// GenerateOTP draws a code uniformly from [OTPMinValue, OTPMaxValue].
func GenerateOTP() (string, error) {
	span := big.NewInt(constvars.OTPMaxValue - constvars.OTPMinValue + 1)
	num, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", constvars.OTPLength, num.Int64()+constvars.OTPMinValue), nil
}

func GenerateObjectKey(patientID, fileName string, now time.Time) string {
	return fmt.Sprintf("%s%d_%s", PatientObjectPrefix(patientID), now.UnixMilli(), fileName)
}

func FormatFileSizeMB(size int64) string {
	return fmt.Sprintf("%.2f", float64(size)/1024/1024)
}
