package utils

import (
	"errors"
	"net/http"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/responses"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String(constvars.LoggingErrorTypeKey, customErr.Code),
			zap.Any("location", customErr.Location),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := responses.ErrorResponseDTO{
		StatusCode: code,
		Success:    false,
		Message:    clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil {
		response.Code = customErr.Code
		if appEnvironment != "production" {
			response.DevMessage = customErr.DevMessage
			response.Location = &customErr.Location
		}
	}
	json.NewEncoder(w).Encode(response)
}
