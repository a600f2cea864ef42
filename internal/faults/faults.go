// Package faults gives every remote-operation outcome a closed error kind
// so handlers can map failures to a status and a rendered message instead
// of inspecting loose (data, err) pairs.
package faults

import (
	"database/sql"
	"errors"
	"fmt"
)

type Kind int

const (
	Transport Kind = iota
	NotFound
	Unauthorized
	Validation
	Upload
)

type Fault struct {
	Kind Kind
	Msg  string
	Err  error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return f.Msg + ": " + f.Err.Error()
	}
	return f.Msg
}

func (f *Fault) Unwrap() error { return f.Err }

func New(kind Kind, msg string) *Fault { return &Fault{Kind: kind, Msg: msg} }

func Newf(kind Kind, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Fault {
	return &Fault{Kind: kind, Msg: msg, Err: err}
}

// Classify folds a raw repo error into a Fault. sql.ErrNoRows means the
// row is gone, everything else is a transport-level failure surfaced
// verbatim.
func Classify(msg string, err error) *Fault {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return Wrap(NotFound, msg, err)
	}
	return Wrap(Transport, msg, err)
}

// KindOf reports the Fault kind of err, defaulting to Transport for
// errors that did not come through this package.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return Transport
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == kind
}
