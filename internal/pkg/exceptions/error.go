package exceptions

import (
	"errors"
	"fmt"
	"patient-records-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	Code          string   `json:"code,omitempty"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"dev_message,omitempty"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func WrapWithoutError(statusCode int, code, clientMessage, devMessage string) *CustomError {
	return newCustomError(nil, statusCode, code, clientMessage, devMessage, getLocation(2))
}

func WrapWithError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	return newCustomError(err, statusCode, code, clientMessage, devMessage, getLocation(2))
}

// BuildNewCustomError records the location of whoever called the constructor
// that called it, so constructors in types.go point at the real call site.
func BuildNewCustomError(err error, statusCode int, code, clientMessage, devMessage string) *CustomError {
	return newCustomError(err, statusCode, code, clientMessage, devMessage, getLocation(3))
}

func newCustomError(err error, statusCode int, code, clientMessage, devMessage string, location Location) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		Code:          code,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		customErr.Err = err
	}
	return customErr
}

// HasCode reports whether err, or anything it wraps, is a CustomError with the given code.
func HasCode(err error, code string) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.Code == code
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
