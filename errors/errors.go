package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseImport      Phase = "import"      // scene import
	PhasePostProcess Phase = "postprocess" // post-import processing
	PhaseBridge      Phase = "bridge"      // custom I/O bridge lifecycle
	PhaseOpen        Phase = "open"        // stream open through a handler
	PhaseIO          Phase = "io"          // stream read/write/seek
	PhaseScene       Phase = "scene"       // scene graph access
	PhaseArchive     Phase = "archive"     // archive and compressed sources
	PhaseConfig      Phase = "config"      // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidScene Kind = "invalid_scene"
	KindNotFound     Kind = "not_found"
	KindInvalidPath  Kind = "invalid_path"
	KindHandler      Kind = "handler"
	KindPoisoned     Kind = "poisoned"
	KindBusy         Kind = "busy"
	KindAllocation   Kind = "allocation"
	KindClosed       Kind = "closed"
	KindUnsupported  Kind = "unsupported"
	KindInvalidInput Kind = "invalid_input"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindInvalidData  Kind = "invalid_data"
	KindTooLarge     Kind = "too_large"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string
	Detail string
	Native string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Native != "" {
		b.WriteString(" (assimp: ")
		b.WriteString(e.Native)
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the file path the error refers to
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Native sets the message reported by the native library
func (b *Builder) Native(msg string) *Builder {
	b.err.Native = msg
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidScene creates the coarse import failure error. native carries
// the importer's own error string when one is available.
func InvalidScene(path, native string) *Error {
	return &Error{
		Phase:  PhaseImport,
		Kind:   KindInvalidScene,
		Path:   path,
		Detail: "import produced no usable scene",
		Native: native,
	}
}

// Incomplete creates an error for a scene flagged incomplete or missing its root node
func Incomplete(path string, flags uint32) *Error {
	return &Error{
		Phase:  PhaseImport,
		Kind:   KindInvalidScene,
		Path:   path,
		Detail: fmt.Sprintf("scene incomplete (flags 0x%x)", flags),
		Value:  flags,
	}
}

// OpenFailed creates an error for a handler that could not produce a stream
func OpenFailed(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindHandler,
		Path:   path,
		Detail: "handler failed to open stream",
		Cause:  cause,
	}
}

// InvalidPath creates an error for a path that cannot be decoded
func InvalidPath(path string, detail string) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindInvalidPath,
		Path:   path,
		Detail: detail,
	}
}

// Poisoned creates an error for a callback handler whose closure panicked earlier
func Poisoned(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindPoisoned,
		Path:   path,
		Detail: "callback handler poisoned by an earlier panic",
		Cause:  cause,
	}
}

// Busy creates an error for a re-entrant or contended callback invocation
func Busy(path string) *Error {
	return &Error{
		Phase:  PhaseOpen,
		Kind:   KindBusy,
		Path:   path,
		Detail: "callback handler already running",
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, what string, size uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %s (%d bytes)", what, size),
	}
}

// Closed creates an error for use of a released resource
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s already closed", what),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Path:   name,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, what string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("%s index %d out of bounds (length %d)", what, index, length),
		Value:  index,
	}
}

// TooLarge creates an error for content exceeding a configured limit
func TooLarge(phase Phase, path string, limit int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTooLarge,
		Path:   path,
		Detail: fmt.Sprintf("content exceeds limit of %d bytes", limit),
		Value:  limit,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
