// Copyright (c) 2025 Snapcli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure surfaced by the snapd client carries one of the Kinds below so that
// callers can branch on the category without string matching. Underlying I/O errors
// are wrapped and remain reachable through errors.Unwrap.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidArgument indicates the caller passed a malformed or missing required field.
	// It is detected locally and never reaches the wire.
	InvalidArgument Kind = "invalid_argument"
	// CredentialRead indicates the credential file is missing or unreadable.
	CredentialRead Kind = "credential_read"
	// MalformedCredential indicates the credential file lacks a string macaroon.
	MalformedCredential Kind = "malformed_credential"
	// Transport indicates a socket or connection failure.
	Transport Kind = "transport"
	// UnexpectedStatus indicates an HTTP status outside {200, 202}.
	UnexpectedStatus Kind = "unexpected_status"
	// EmptyResponse indicates a 200/202 reply with an empty body.
	EmptyResponse Kind = "empty_response"
	// MalformedJSON indicates the reply body is not valid JSON.
	MalformedJSON Kind = "malformed_json"
	// MalformedResponse indicates valid JSON missing the expected envelope field
	// or carrying an unexpected status-code.
	MalformedResponse Kind = "malformed_response"
)

// E wraps an error with kind and human-friendly message.
//
// Status, Body, DaemonKind and DaemonMessage are only populated for
// UnexpectedStatus errors; the daemon fields are passed through verbatim
// from the error envelope when the body carries one.
type E struct {
	Kind    Kind
	Message string
	Err     error

	Status        int
	Body          []byte
	DaemonKind    string
	DaemonMessage string
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) *E {
	return &E{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewStatus builds an UnexpectedStatus error for the given HTTP status code.
func NewStatus(code int, body []byte, daemonKind, daemonMessage string) *E {
	msg := fmt.Sprintf("response status: %d", code)
	if daemonMessage != "" {
		msg += " (" + daemonMessage + ")"
	}
	return &E{
		Kind:          UnexpectedStatus,
		Message:       msg,
		Status:        code,
		Body:          body,
		DaemonKind:    daemonKind,
		DaemonMessage: daemonMessage,
	}
}

// KindOf returns the Kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsCredential reports whether err is a credential loading failure.
func IsCredential(err error) bool {
	k := KindOf(err)
	return k == CredentialRead || k == MalformedCredential
}

// StatusOf returns the HTTP status carried by an UnexpectedStatus error, or 0.
func StatusOf(err error) int {
	var e *E
	if stderrors.As(err, &e) && e.Kind == UnexpectedStatus {
		return e.Status
	}
	return 0
}

// DaemonKindOf returns the daemon's error kind (e.g. "snap-already-installed")
// passed through on an UnexpectedStatus error, or "".
func DaemonKindOf(err error) string {
	var e *E
	if stderrors.As(err, &e) {
		return e.DaemonKind
	}
	return ""
}
