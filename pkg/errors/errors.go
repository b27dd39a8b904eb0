// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New creates a NimbusError from a registered code. Unregistered codes fall
// back to a generic internal error so callers never get a nil error shape.
func New(code ErrorCode, details string) *NimbusError {
	def, ok := errorDefinitions[code]
	if !ok {
		return &NimbusError{
			Code:       code,
			Domain:     DomainServer,
			Message:    "Unknown error",
			Details:    details,
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	return &NimbusError{
		Code:       code,
		Domain:     def.domain,
		Message:    def.message,
		Details:    details,
		HTTPStatus: def.httpStatus,
	}
}

// Wrap converts an arbitrary error into a coded NimbusError, preserving the
// original error text as details. A NimbusError passes through unchanged.
func Wrap(err error, code ErrorCode) *NimbusError {
	if err == nil {
		return nil
	}
	var ne *NimbusError
	if errors.As(err, &ne) {
		return ne
	}
	return New(code, err.Error())
}

func (e *NimbusError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s-%d] %s: %s", e.Domain, e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s-%d] %s", e.Domain, e.Code, e.Message)
}

// WithMetadata attaches a contextual key/value pair and returns the error for
// chaining.
func (e *NimbusError) WithMetadata(key, value string) *NimbusError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// WithStatus overrides the HTTP status, used when an upstream status must be
// surfaced verbatim.
func (e *NimbusError) WithStatus(status int) *NimbusError {
	if status > 0 {
		e.HTTPStatus = status
	}
	return e
}

// Is reports whether err is a NimbusError carrying the given code.
func Is(err error, code ErrorCode) bool {
	var ne *NimbusError
	if errors.As(err, &ne) {
		return ne.Code == code
	}
	return false
}

// InDomain reports whether err is a NimbusError from the given domain.
func InDomain(err error, domain Domain) bool {
	var ne *NimbusError
	if errors.As(err, &ne) {
		return ne.Domain == domain
	}
	return false
}

// Status returns the HTTP status an error should surface as. Non-Nimbus
// errors map to 500.
func Status(err error) int {
	var ne *NimbusError
	if errors.As(err, &ne) && ne.HTTPStatus != 0 {
		return ne.HTTPStatus
	}
	return http.StatusInternalServerError
}
