// Package errors defines the failure taxonomy of the SWAPI adapter.
//
// Every error type exposes a machine readable code through Extensions, which
// graphql-go copies into the "extensions" member of the GraphQL error it
// reports for the failing field.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Extension codes reported to GraphQL clients.
const (
	CodeConfiguration = "CONFIGURATION"
	CodeMalformedID   = "MALFORMED_ID"
	CodeUpstreamFetch = "UPSTREAM_FETCH"
	CodeDataShape     = "DATA_SHAPE"
)

// ConfigError reports a schema definition bug, such as a resource kind with no
// GraphQL type mapping. It is never recovered from.
type ConfigError struct {
	Message string
}

// Configf formats a ConfigError.
func Configf(format string, a ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, a...)}
}

func (err *ConfigError) Error() string {
	return "configuration error: " + err.Message
}

func (err *ConfigError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeConfiguration}
}

// MalformedIDError is returned when a global or local ID argument cannot be
// decoded, or when a singular field receives neither of its ID arguments.
type MalformedIDError struct {
	ID      string
	Message string
	Err     error
}

// MalformedIDf formats a MalformedIDError for the given raw id.
func MalformedIDf(id string, format string, a ...interface{}) *MalformedIDError {
	return &MalformedIDError{ID: id, Message: fmt.Sprintf(format, a...)}
}

func (err *MalformedIDError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("%s: %v", err.Message, err.Err)
	}
	return err.Message
}

func (err *MalformedIDError) Unwrap() error {
	return err.Err
}

func (err *MalformedIDError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": CodeMalformedID}
	if err.ID != "" {
		ext["id"] = err.ID
	}
	return ext
}

// FetchError is returned by the backend fetcher when a GET fails at the
// transport level, answers with a non-success status or returns a body that is
// not JSON. StatusCode is zero unless the upstream answered.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (err *FetchError) Error() string {
	switch {
	case err.StatusCode != 0 && err.Err == nil:
		return fmt.Sprintf("fetch %s: unexpected status %d %s", err.URL, err.StatusCode, http.StatusText(err.StatusCode))
	case err.StatusCode != 0:
		return fmt.Sprintf("fetch %s: status %d: %v", err.URL, err.StatusCode, err.Err)
	default:
		return fmt.Sprintf("fetch %s: %v", err.URL, err.Err)
	}
}

func (err *FetchError) Unwrap() error {
	return err.Err
}

// NotFound reports whether the upstream answered 404.
func (err *FetchError) NotFound() bool {
	return err.StatusCode == http.StatusNotFound
}

func (err *FetchError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": CodeUpstreamFetch}
	if err.StatusCode != 0 {
		ext["status"] = err.StatusCode
	}
	return ext
}

// DecodeError reports a payload that does not have the expected shape, most
// importantly one without a usable "url" member.
type DecodeError struct {
	URL     string
	Message string
	Err     error
}

// Decodef formats a DecodeError.
func Decodef(url string, format string, a ...interface{}) *DecodeError {
	return &DecodeError{URL: url, Message: fmt.Sprintf(format, a...)}
}

func (err *DecodeError) Error() string {
	msg := "decode"
	if err.URL != "" {
		msg += " " + err.URL
	}
	msg += ": " + err.Message
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

func (err *DecodeError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeDataShape}
}

// IsNotFound reports whether err, or any error it wraps, is an upstream 404.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.NotFound()
}

// Wrap annotates err with a message and a stack trace. It returns nil if err
// is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, a ...interface{}) error {
	return pkgerrors.Wrapf(err, format, a...)
}

// New returns an error with the supplied message and a stack trace.
func New(message string) error {
	return pkgerrors.New(message)
}

// Is and As forward to the standard library so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }

var (
	_ error = &ConfigError{}
	_ error = &MalformedIDError{}
	_ error = &FetchError{}
	_ error = &DecodeError{}
)
