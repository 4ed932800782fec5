package domain

import (
	"errors"
	"net/http"
)

// HTTPError is implemented by errors that carry their own HTTP status code,
// so the handler layer can map domain failures without type switches per call
// site.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a resource was not found.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input. Move rejections (self-parent,
	// cyclic parent, non-empty delete) are validation errors: they abort
	// before any store write and surface in domain terms.
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure.
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates authorization failure.
	ForbiddenError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }

func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool    { return target == ErrForbidden }

// Sentinel errors for errors.Is matching.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ConflictError reports a resource conflict with details about the existing
// resource, e.g. a sibling folder with the same name.
type ConflictError struct {
	Message      string
	ResourceType string // "folder", "creative", "campaign", ...
	ResourceID   string // id of the existing/conflicting resource
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
