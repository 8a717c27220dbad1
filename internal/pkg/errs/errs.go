// Package errs wraps cockroachdb/errors behind the three operations the
// rest of festserve needs: wrapping with context, creating sentinels, and
// marking an error so errors.Is matches a sentinel without losing the cause.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg. Returns nil when err is nil so call sites
// can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New creates a sentinel error with stack capture.
func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is while keeping err as the
// cause. Command error taxonomies are built on this: infra errors get
// marked with the usecase sentinel the handler switches on.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

// marked exposes the cockroachdb mark to the standard library's errors.Is,
// which only follows Unwrap and Is methods and does not see cr.Mark markers.
type marked struct {
	cause error
	mark  error
}

func (m *marked) Error() string { return m.cause.Error() }

func (m *marked) Unwrap() error { return m.cause }

func (m *marked) Is(target error) bool { return target == m.mark }
