package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindUnauthorized
	KindClient
	KindServer
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUnauthorized:
		return "unauthorized"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// Error is returned for every failed call. StatusCode is zero when no response
// was received.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       []byte
	Err        error
	decode     bool
}

func (e *Error) Kind() ErrorKind {
	switch {
	case e.decode:
		return KindDecode
	case e.StatusCode == 0:
		return KindTransport
	case e.StatusCode == http.StatusUnauthorized:
		return KindUnauthorized
	case e.StatusCode >= 500:
		return KindServer
	default:
		return KindClient
	}
}

func (e *Error) Error() string {
	switch e.Kind() {
	case KindTransport:
		return fmt.Sprintf("%s %s: unable to reach server: %v", e.Method, e.Path, e.Err)
	case KindDecode:
		return fmt.Sprintf("%s %s: malformed response (status %d): %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind() == KindTransport
}

// Message returns the backend's message for err when there is one, else err's text.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
