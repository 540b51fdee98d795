// Package provider contains the clients for external text-generation APIs.
package provider

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed provider call.
type ErrorKind string

const (
	// KindAuth means the credential was rejected (HTTP 401).
	KindAuth ErrorKind = "auth"

	// KindBadRequest means the provider rejected the request shape (HTTP 400).
	KindBadRequest ErrorKind = "bad_request"

	// KindRateLimited means the provider throttled the call (HTTP 429).
	KindRateLimited ErrorKind = "rate_limited"

	// KindServer means the provider itself failed (HTTP 5xx).
	KindServer ErrorKind = "server"

	// KindUnknown covers network failures, timeouts and unclassified statuses.
	KindUnknown ErrorKind = "unknown"
)

// maxExcerptLen bounds how much of an upstream error body is carried around.
const maxExcerptLen = 200

// TransportError is the typed failure returned by every provider client.
// It carries the upstream status and a truncated body excerpt for diagnosis,
// never the credential.
type TransportError struct {
	// Provider is the identifier of the client that produced the error.
	Provider string

	// Kind is the failure classification.
	Kind ErrorKind

	// Status is the upstream HTTP status code, 0 for transport failures.
	Status int

	// Excerpt is a truncated slice of the upstream response body.
	Excerpt string

	// Err is the underlying transport error, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s error [%d]: %s", e.Provider, e.Kind, e.Status, e.Excerpt)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s error: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s error", e.Provider, e.Kind)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// kindForStatus maps an upstream HTTP status to an ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// bodyExcerpt truncates an upstream response body for inclusion in errors.
func bodyExcerpt(body []byte) string {
	if len(body) > maxExcerptLen {
		return string(body[:maxExcerptLen])
	}
	return string(body)
}

// statusError builds a TransportError from an upstream non-2xx response.
func statusError(providerName string, status int, body []byte) *TransportError {
	return &TransportError{
		Provider: providerName,
		Kind:     kindForStatus(status),
		Status:   status,
		Excerpt:  bodyExcerpt(body),
	}
}

// transportError builds a TransportError for network level failures.
func transportError(providerName string, err error) *TransportError {
	return &TransportError{
		Provider: providerName,
		Kind:     KindUnknown,
		Err:      err,
	}
}
