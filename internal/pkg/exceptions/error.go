package exceptions

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind classifies a failure so callers can branch on it without string
// matching. The login probe in particular relies on the distinction between
// KindAuthRejected (try the other role) and KindNetwork (abort).
type Kind string

const (
	KindValidation   Kind = "validation"
	KindAuthRejected Kind = "auth_rejected"
	KindNetwork      Kind = "network"
	KindDecode       Kind = "decode"
	KindHTTPStatus   Kind = "http_status"
	KindSession      Kind = "session"
	KindInternal     Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Kind          Kind     `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
	}
}

// KindOf returns the Kind carried by err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.Kind
	}
	return KindInternal
}

func IsAuthRejected(err error) bool {
	return KindOf(err) == KindAuthRejected
}

func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
