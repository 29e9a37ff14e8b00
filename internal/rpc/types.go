package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request is a JSON-RPC request: {"method": "...", "params": [{...}]}.
// Params carries at most one object.
type Request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params,omitempty"`
}

// Error is a structured RPC error carried inside the result object.
type Error struct {
	Code        int    `json:"error_code"`
	ErrorString string `json:"error"`
	Message     string `json:"error_message"`
}

// RPC error codes.
const (
	CodeUnknownMethod = 26
	CodeInvalidParams = 31
	CodeInternal      = 73
	CodeNotFound      = 29
)

// NewError builds an RPC error.
func NewError(code int, errorString, message string) *Error {
	return &Error{Code: code, ErrorString: errorString, Message: message}
}

// ErrorMethodNotFound is returned for an unregistered method.
func ErrorMethodNotFound(method string) *Error {
	return NewError(CodeUnknownMethod, "unknownCmd", fmt.Sprintf("Unknown method: %s", method))
}

// ErrorInvalidParams is returned for malformed or missing parameters.
func ErrorInvalidParams(message string) *Error {
	return NewError(CodeInvalidParams, "invalidParams", message)
}

// ErrorInternal is returned when a handler fails unexpectedly.
func ErrorInternal(message string) *Error {
	return NewError(CodeInternal, "internal", message)
}

// ErrorNotFound is returned when the requested entity does not exist.
func ErrorNotFound(errorString, message string) *Error {
	return NewError(CodeNotFound, errorString, message)
}

// Handler executes one RPC method. A nil params is valid for methods
// that take none.
type Handler func(ctx context.Context, params json.RawMessage) (map[string]any, *Error)
