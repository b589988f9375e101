// Package errs provides the error taxonomy shared by the order service.
//
// Every error type follows the same shape:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) returned by Unwrap,
//     so callers classify with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//
// The HTTP adapter maps ErrValueIsRequired, ErrValueIsInvalid and ErrValueIsOutOfRange
// to 400 and ErrObjectNotFound to 404. Everything else is an internal failure.
package errs
