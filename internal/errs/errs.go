// Package errs defines the error taxonomy shared across wp2txt-sub000.
//
// The core is resilient by default: malformed wikitext never aborts a run
// (see ParseError, EncodingError). I/O failures do abort and are surfaced
// with Kind IoError so callers can distinguish them with errors.As.
package errs

import "fmt"

// Kind identifies one of the closed error categories named in the core's
// error-handling design.
type Kind string

const (
	KindParse         Kind = "parse"
	KindEncoding      Kind = "encoding"
	KindBz2Validation Kind = "bz2_validation"
	KindXML           Kind = "xml"
	KindIO            Kind = "io"
	KindNetwork       Kind = "network"
)

// Error is the concrete error type carried across the API boundary.
// It never carries source-level stack context, only {Kind, Message, Path}.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, path string, err error) *Error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: kind, Message: msg, Path: path, Err: err}
}

func Parse(path string, err error) *Error         { return newErr(KindParse, path, err) }
func Encoding(path string, err error) *Error       { return newErr(KindEncoding, path, err) }
func Bz2Validation(path string, err error) *Error  { return newErr(KindBz2Validation, path, err) }
func XML(path string, err error) *Error            { return newErr(KindXML, path, err) }
func IO(path string, err error) *Error             { return newErr(KindIO, path, err) }
func Network(path string, err error) *Error        { return newErr(KindNetwork, path, err) }

// Is reports whether err is a *Error of the given Kind, using the same
// errors.As-based predicate style as SQLite constraint-error detection,
// generalised to this package's own closed Kind enum instead of
// driver-specific codes.
func Is(err error, kind Kind) bool {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind == kind
	}
	return false
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
