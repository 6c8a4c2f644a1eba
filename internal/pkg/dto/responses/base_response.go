package responses

import "patient-records-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponseDTO struct {
	StatusCode int                  `json:"status_code"`
	Success    bool                 `json:"success"`
	Code       string               `json:"code,omitempty"`
	Message    string               `json:"message"`
	DevMessage string               `json:"dev_message,omitempty"`
	Location   *exceptions.Location `json:"location,omitempty"`
}
