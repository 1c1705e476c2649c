package storage

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrIO marks failures to read or replace a document.
	ErrIO = crerr.New("storage i/o failure")
	// ErrNotExist marks reads of a document that was never written. Always also ErrIO.
	ErrNotExist = crerr.New("document does not exist")
	// ErrMalformed marks documents whose content cannot be decoded.
	ErrMalformed = crerr.New("malformed document")
)

// Handle is one whole document. Reads return the full content and writes replace it.
type Handle interface {
	Name() string
	ReadAll(ctx context.Context) ([]byte, error)
	ReplaceAll(ctx context.Context, body []byte) error
}

// MarkIO wraps err with msg and marks it as an i/o failure.
func MarkIO(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(crerr.Wrapf(err, msg, args...), ErrIO)
}

// Malformedf builds a decode failure for the named document.
func Malformedf(name, format string, args ...any) error {
	return crerr.Mark(crerr.Newf("%s: "+format, append([]any{name}, args...)...), ErrMalformed)
}

// MarkMalformed wraps a decoder error for the named document.
func MarkMalformed(err error, name string) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(crerr.Wrapf(err, "decode %s", name), ErrMalformed)
}

// IsIO reports whether err carries the ErrIO mark anywhere in its chain.
func IsIO(err error) bool {
	return crerr.Is(err, ErrIO)
}

func IsNotExist(err error) bool {
	return crerr.Is(err, ErrNotExist)
}

func IsMalformed(err error) bool {
	return crerr.Is(err, ErrMalformed)
}
