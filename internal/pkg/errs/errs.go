package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WithHint attaches a user-facing message to the error. It survives
// Wrap and Mark, so handlers can surface it after the usecase layer has
// translated the error.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return cr.WithHint(err, hint)
}

// Hint returns the user-facing message attached with WithHint, or an
// empty string when the error carries none.
func Hint(err error) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return ""
	}
	return hints[0]
}
