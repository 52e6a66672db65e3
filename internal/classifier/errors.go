package classifier

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidEndpoint is returned when the endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint: expected an absolute http or https URL")

	// ErrInvalidProxyAddress is returned when the proxy address is not host:port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrUnexpectedStatus is wrapped by StatusError for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse is returned when the response body is not a JSON verdict.
	ErrMalformedResponse = errors.New("malformed response body")

	// ErrMissingField is returned when a required verdict field is absent.
	ErrMissingField = errors.New("missing field in response")

	// ErrResponseTooLarge is returned when the response body exceeds the size limit.
	ErrResponseTooLarge = errors.New("response body too large")
)

// StatusError reports a non-2xx response from the classification service.
type StatusError struct {
	// StatusCode is the HTTP status code received.
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrUnexpectedStatus, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
