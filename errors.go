package depscan

import (
	"errors"
	"strings"
)

// Error is the depscan error domain type.
//
// Errors coming from depscan components should be able to be inspected as
// ([errors.As]) an *Error at some point in the error chain.
//
// Implementers of depscan components should create an Error at the system
// boundary (e.g. reading a manifest off disk, calling a vulnerability feed)
// and intermediate layers should not wrap in another Error except to add
// additional [ErrorKind] information. That is to say, use [fmt.Errorf] with
// a "%w" verb in preference to creating a containing Error.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

// Assert this implements all the cool features.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrValidation,
		ErrManifestParsing,
		ErrFileSystem,
		ErrFeedUnavailable,
		ErrIntegrity,
		ErrAnalysisBudgetExceeded,
		ErrFatal:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind. Callers should compare against a declared
// [ErrorKind] over a specific error.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of errors to be checked against.
//
// If unsure which kind applies, ErrFatal should be used.
type ErrorKind string

// Defined error kinds, mirroring the classes a scan run can fail with.
var (
	// ErrValidation marks malformed input: bad CLI flags, an unreadable
	// workspace root, a config value out of range.
	ErrValidation = ErrorKind("validation")
	// ErrManifestParsing marks a manifest file that exists but could not be
	// parsed by its ecosystem adapter.
	ErrManifestParsing = ErrorKind("manifest parsing")
	// ErrFileSystem marks an I/O failure walking or reading the workspace.
	ErrFileSystem = ErrorKind("filesystem")
	// ErrFeedUnavailable marks a vulnerability or enrichment feed that could
	// not be fetched or loaded from cache.
	ErrFeedUnavailable = ErrorKind("feed unavailable")
	// ErrIntegrity marks a cache or feedback record that failed a checksum
	// or schema check.
	ErrIntegrity = ErrorKind("integrity")
	// ErrAnalysisBudgetExceeded marks a run that hit a configured time, node,
	// or memory ceiling before completing.
	ErrAnalysisBudgetExceeded = ErrorKind("analysis budget exceeded")
	// ErrFatal marks an error with no more specific classification.
	ErrFatal = ErrorKind("fatal")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
