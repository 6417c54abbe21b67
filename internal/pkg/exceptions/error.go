package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"mna-assessment-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int         `json:"status_code"`
	Success       bool        `json:"success"`
	ClientMessage string      `json:"message"`
	Details       interface{} `json:"details,omitempty"`
	DevMessage    string      `json:"dev_message,omitempty"`
	Locations     []Location  `json:"locations,omitempty"`
	err           error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.err
}

// BuildNewCustomError wraps err with the status and messages returned to the
// client. The caller's location is recorded, and locations already carried by
// a wrapped CustomError are kept after it.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		err:           err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var inner *CustomError
		if errors.As(err, &inner) {
			customErr.Locations = append(customErr.Locations, inner.Locations...)
		}
	}
	return customErr
}

// WithDetails attaches client-facing details, such as the invalid items of
// a submission.
func (e *CustomError) WithDetails(details interface{}) *CustomError {
	e.Details = details
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := constvars.ErrFunctionNameUnknown
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
