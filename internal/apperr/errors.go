// Package apperr holds the catalog's error taxonomy. Every failure that the
// HTTP layer must classify wraps one of the sentinels below, so handlers can
// map them with errors.Is without string matching.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrDuplicateContent = errors.New("content already exists")
	ErrNotFound         = errors.New("not found")
	ErrContentNotFound  = errors.New("content not found in catalog")
	ErrNotInList        = errors.New("entry not in list")
	ErrValidation       = errors.New("validation failed")
	ErrMetadataFetch    = errors.New("metadata fetch failed")
	ErrUnauthorized     = errors.New("unauthorized")

	// ErrConflict reports a lost optimistic-concurrency race. Callers retry
	// it; if it escapes it is reported as 409.
	ErrConflict = errors.New("concurrent modification")
)

// Error is a classified failure. Kind is one of the sentinels above.
type Error struct {
	Kind error
	Op   string
	ID   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.ID != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.ID)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Duplicate(op, id string) error {
	return &Error{Kind: ErrDuplicateContent, Op: op, ID: id}
}

func NotFound(op, id string) error {
	return &Error{Kind: ErrNotFound, Op: op, ID: id}
}

func ContentNotFound(op, id string) error {
	return &Error{Kind: ErrContentNotFound, Op: op, ID: id}
}

func NotInList(op, id string) error {
	return &Error{Kind: ErrNotInList, Op: op, ID: id}
}

func Validation(op, msg string) error {
	return &Error{Kind: ErrValidation, Op: op, Msg: msg}
}

func MetadataFetch(op, id string, cause error) error {
	return &Error{Kind: ErrMetadataFetch, Op: op, ID: id, Err: cause}
}

func Unauthorized(op string) error {
	return &Error{Kind: ErrUnauthorized, Op: op}
}

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicateContent) }

// HTTPStatus classifies err for the REST layer.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrContentNotFound), errors.Is(err, ErrNotInList):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateContent), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrMetadataFetch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
