// SPDX-License-Identifier: GPL-3.0-only

// Package apperr carries domain failures as a single tagged error type with
// an HTTP-status hint, serialized uniformly at the transport boundary.
package apperr

import "net/http"

type Kind int

const (
	Validation Kind = iota
	Duplicate
	Conflict
	NotFound
	Unauthenticated
	InvalidCredentials
	InactiveAccount
	Exhausted
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Status: statusFor(kind)}
}

func statusFor(kind Kind) int {
	switch kind {
	case Validation, Duplicate:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated, InvalidCredentials, InactiveAccount:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
