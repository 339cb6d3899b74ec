package memetree

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"

	"github.com/memetree/memetree.go/pkg/memes"
)

// TransportError means the call produced no interpretable server response:
// the wire failed outright, or the body could not be read as the service's
// error shape. It carries no HTTP status semantics and is never retried by
// this layer.
type TransportError struct {
	Op      string
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("memetree: %s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("memetree: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("memetree: %s: %s", e.Op, e.Message)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is an interpretable rejection. Status disambiguates the cause
// (404 not found, 409 slug conflict, 406 validation failure, 412 stale
// version); Message is human-presentable as-is. Callers branching
// programmatically must inspect Status and Duplicate, never the text.
type ServerError struct {
	Status  int
	Message string

	// Duplicate is the pre-existing entity the server attached to a 409
	// slug conflict, letting the caller recover it without a re-query.
	// Nil for every other status.
	Duplicate memes.Meme
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// IsNotFound reports whether err is a 404 rejection.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsConflict reports whether err is a 409 slug conflict.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

// IsInvalid reports whether err is a 406 validation failure.
func IsInvalid(err error) bool { return hasStatus(err, http.StatusNotAcceptable) }

// IsStaleVersion reports whether err is a 412 optimistic-concurrency
// conflict: the entity changed on the server since it was last read.
func IsStaleVersion(err error) bool { return hasStatus(err, http.StatusPreconditionFailed) }

func hasStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}

// Duplicate extracts the conflicting entity from a 409 rejection, if the
// server attached one.
func Duplicate(err error) (memes.Meme, bool) {
	var se *ServerError
	if errors.As(err, &se) && se.Duplicate != nil {
		return se.Duplicate, true
	}
	return nil, false
}

// translate turns a non-2xx response into an error. Error bodies carry an
// "error" string and, on slug conflicts, a "duplicate" record shaped like
// the entity being created; kind names that expected shape. A body that
// does not parse as the error shape degrades to a TransportError carrying
// the raw text, so the failure is never silently lost.
func translate(op string, status int, body []byte, kind memes.Kind) error {
	msg, err := jsonparser.GetString(body, "error")
	if err != nil {
		return &TransportError{Op: op, Message: strings.TrimSpace(string(body))}
	}
	se := &ServerError{Status: status, Message: msg}
	if kind == "" {
		return se
	}
	dup, dt, _, err := jsonparser.Get(body, "duplicate")
	if err != nil || dt != jsonparser.Object {
		return se
	}
	var raw memes.Raw
	if json.Unmarshal(dup, &raw) != nil {
		return se
	}
	if m, derr := memes.DecodeMeme(kind, raw); derr == nil {
		se.Duplicate = m
	}
	return se
}
