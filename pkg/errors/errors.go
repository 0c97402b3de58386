// Package errors tags failures with a Kind so callers can tell an inference
// failure from a parse or persistence failure without matching on messages.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnknown      Kind = ""
	KindInvalid      Kind = "invalid"
	KindInference    Kind = "inference"
	KindParse        Kind = "parse"
	KindPersistence  Kind = "persistence"
	KindNotFound     Kind = "not-found"
	KindUnauthorized Kind = "unauthorized"
)

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrInvalid      = &Error{Kind: KindInvalid}
	ErrInference    = &Error{Kind: KindInference}
	ErrParse        = &Error{Kind: KindParse}
	ErrPersistence  = &Error{Kind: KindPersistence}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil && e.Op == "":
		return string(e.Kind)
	case e.Err == nil:
		return e.Op + ": " + string(e.Kind)
	case e.Op == "":
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

// E wraps err with kind and op. A nil err yields nil. If err already carries a
// kind, the outer kind wins but the chain is kept.
func E(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func Newf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the outermost Kind in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	Is  = stderrors.Is
	As  = stderrors.As
	New = stderrors.New
)

// HTTPStatus maps err's kind onto a response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
