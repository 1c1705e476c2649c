package usecase

import (
	"errors"

	"github.com/riskibarqy/fantasy-market/internal/platform/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrAlreadyOwned = errors.New("player already in team")
	ErrNotOwned     = errors.New("player not in team")
)

// FailureKind tells callers why an operation degraded.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureIO covers missing, unreadable or unwritable documents.
	FailureIO
	// FailureParse covers documents that were read but could not be decoded.
	FailureParse
	// FailureRejected covers requests refused by the market rules.
	FailureRejected
	FailureOther
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureIO:
		return "io"
	case FailureParse:
		return "parse"
	case FailureRejected:
		return "rejected"
	default:
		return "other"
	}
}

func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case storage.IsMalformed(err):
		return FailureParse
	case storage.IsIO(err):
		return FailureIO
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAlreadyOwned),
		errors.Is(err, ErrNotOwned):
		return FailureRejected
	default:
		return FailureOther
	}
}
