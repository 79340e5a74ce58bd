// Package errors is the single import for error handling across storefront:
// matching comes from the standard library, wrapping from pkg/errors so that
// every annotated error carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and joining.
var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Annotation with stack traces.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// Cause returns the innermost error of a pkg/errors chain, or err itself when
// it was never wrapped.
func Cause(err error) error {
	return pkgerrors.Cause(err)
}
