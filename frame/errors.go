package frame

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch, ErrDuplicateIndexUnsupported, and
// ErrCompatibilityRejected are sentinel bases for their respective error
// kinds (spec.md §7), so callers can branch with errors.Is instead of
// errors.As when they don't need the concrete error's fields.
var (
	ErrLengthMismatch            = errors.New("frame: length mismatch")
	ErrDuplicateIndexUnsupported = errors.New("frame: duplicate index unsupported")
	ErrCompatibilityRejected     = errors.New("frame: compatibility rejected")
)

// LengthMismatchError reports that an index length and column length did
// not agree where parity is required (spec.md §7).
type LengthMismatchError struct {
	IndexLen  int
	ColumnLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("index length (%d) does not match column length (%d)", e.IndexLen, e.ColumnLen)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// DuplicateIndexUnsupportedError is returned when strict policy observes
// duplicate labels and refuses to proceed.
type DuplicateIndexUnsupportedError struct{}

func (e *DuplicateIndexUnsupportedError) Error() string {
	return "duplicate index labels are unsupported in strict mode"
}

func (e *DuplicateIndexUnsupportedError) Is(target error) bool {
	return target == ErrDuplicateIndexUnsupported
}

// CompatibilityRejectedError is returned when the policy gate declines an
// operation, e.g. because the resulting union would be too large.
type CompatibilityRejectedError struct {
	Detail string
}

func (e *CompatibilityRejectedError) Error() string {
	return fmt.Sprintf("compatibility gate rejected operation: %s", e.Detail)
}

func (e *CompatibilityRejectedError) Is(target error) bool { return target == ErrCompatibilityRejected }
