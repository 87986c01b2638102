package errors

import "fmt"

type ErrorCode int

const (
	InternalError ErrorCode = iota
	InvalidBatchShape
	MalformedColumnName
	MalformedEdgeName
	InvalidConfiguration
)

// HopError is any kind of error that is exposed to the user via external
// interfaces like the CLI.
type HopError struct {
	Code ErrorCode
	Msg  string
}

func (h HopError) Error() string {
	return h.Msg
}

func NewHopErrorf(errorCode ErrorCode, msgFormat string, args ...interface{}) HopError {
	msg := fmt.Sprintf(fmt.Sprintf("HOP%04d - %s", errorCode, msgFormat), args...)
	return HopError{Code: errorCode, Msg: msg}
}

func NewInvalidBatchShapeError(msg string) HopError {
	return NewHopErrorf(InvalidBatchShape, "Invalid result batch: %s", msg)
}

func NewMalformedColumnNameError(colName string) HopError {
	return NewHopErrorf(MalformedColumnName, "Bad column name format: %s", colName)
}

func NewMalformedEdgeNameError(edgeName string) HopError {
	return NewHopErrorf(MalformedEdgeName, "Bad edge name: %s", edgeName)
}

func NewInvalidConfigurationError(msg string) HopError {
	return NewHopErrorf(InvalidConfiguration, "Invalid configuration: %s", msg)
}

func Error(msg string) error {
	return New(msg)
}
