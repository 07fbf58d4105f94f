package data

import (
	"bytes"
	"encoding/json"
)

type Kind int

const (
	KindInvalidInput    Kind = 1
	KindNotFound        Kind = 2
	KindUpstreamFailure Kind = 3
)

func (k Kind) String() string {
	switch k {
	default:
		return ""
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindUpstreamFailure:
		return "upstream_failure"
	}
}

// Error describes why an operation failed, Kind is used by the service
// to determine the status code
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

// Result is the outcome of a single operation, exactly one of Payload
// or Err is set
type Result struct {
	Payload json.RawMessage
	Err     *Error
}

func Ok(payload []byte) Result {
	return Result{Payload: payload}
}

func Err(kind Kind, message string) Result {
	return Result{Err: &Error{Kind: kind, Message: message}}
}

func (r Result) Ok() bool {
	return r.Err == nil
}

// IsEmpty reports whether a json body is absent or one of the
// falsy literals; empty arrays and objects are not empty
func IsEmpty(body []byte) bool {
	switch string(bytes.TrimSpace(body)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
