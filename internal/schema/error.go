package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
)

// Kind classifies a [MoveError].
type Kind int

const (
	KindInvalidBase Kind = iota + 1
	KindInsecureBaseDirectory
	KindPermissionDenied
	KindSymlinkRejected
	KindNotFound
	KindDestinationExists
	KindInsufficientSpace
	KindCopyFailed
	KindVerificationFailed
	KindRaceDetected
	KindInterrupted
)

var (
	// ErrInvalidBase is an error that occurs when a base directory is missing,
	// is not a directory or cannot be read.
	ErrInvalidBase = errors.New("invalid base directory")

	// ErrInsecureBaseDirectory is an error that occurs when a base directory is
	// not owned by the effective user or is writable by group or others.
	ErrInsecureBaseDirectory = errors.New("insecure base directory")

	// ErrPermissionDenied is an error that occurs when a path may not be used,
	// either because the operating system refuses access or because it lies
	// outside of the permitted base directory.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSymlinkRejected is an error that occurs when a path, or any of its
	// ancestors below the base directory, is a symbolic link.
	ErrSymlinkRejected = errors.New("symbolic link rejected")

	// ErrNotFound is an error that occurs when no (suitable) source exists.
	ErrNotFound = errors.New("source not found")

	// ErrDestinationExists is an error that occurs when the destination is
	// already present. Existing destinations are never overwritten.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrInsufficientSpace is an error that occurs when the destination
	// filesystem cannot take the source plus the cushion.
	ErrInsufficientSpace = errors.New("insufficient space on destination")

	// ErrCopyFailed is an error that occurs on any I/O failure while moving.
	ErrCopyFailed = errors.New("copy failed")

	// ErrVerificationFailed is an error that occurs when the staged copy does
	// not match the source.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrRaceDetected is an error that occurs when the destination changed
	// between the start of a copy and its final promotion.
	ErrRaceDetected = errors.New("race detected on destination")

	// ErrInterrupted is an error that occurs when the move was cancelled.
	ErrInterrupted = errors.New("interrupted")
)

//nolint:gochecknoglobals
var kindSentinels = map[Kind]error{
	KindInvalidBase:           ErrInvalidBase,
	KindInsecureBaseDirectory: ErrInsecureBaseDirectory,
	KindPermissionDenied:      ErrPermissionDenied,
	KindSymlinkRejected:       ErrSymlinkRejected,
	KindNotFound:              ErrNotFound,
	KindDestinationExists:     ErrDestinationExists,
	KindInsufficientSpace:     ErrInsufficientSpace,
	KindCopyFailed:            ErrCopyFailed,
	KindVerificationFailed:    ErrVerificationFailed,
	KindRaceDetected:          ErrRaceDetected,
	KindInterrupted:           ErrInterrupted,
}

func (k Kind) String() string {
	switch k {
	case KindInvalidBase:
		return "InvalidBase"
	case KindInsecureBaseDirectory:
		return "InsecureBaseDirectory"
	case KindPermissionDenied:
		return "PermissionDenied"
	case KindSymlinkRejected:
		return "SymlinkRejected"
	case KindNotFound:
		return "NotFound"
	case KindDestinationExists:
		return "DestinationExists"
	case KindInsufficientSpace:
		return "InsufficientSpace"
	case KindCopyFailed:
		return "CopyFailed"
	case KindVerificationFailed:
		return "VerificationFailed"
	case KindRaceDetected:
		return "RaceDetected"
	case KindInterrupted:
		return "Interrupted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MoveError is the typed failure returned by the engine. It matches the
// sentinel of its [Kind] with [errors.Is] and unwraps to its cause.
type MoveError struct {
	Kind   Kind
	Path   string
	Reason string

	// Required and Available are only set for [KindInsufficientSpace].
	Required  uint64
	Available uint64

	Err error
}

// NewError returns a pointer to a new [MoveError].
func NewError(kind Kind, path string, err error) *MoveError {
	return &MoveError{Kind: kind, Path: path, Err: err}
}

// FromOSError classifies an operating system error that occurred on path.
// Denied access becomes [KindPermissionDenied], a missing path or an ancestor
// that is not a directory becomes [KindNotFound] and too many levels of
// symbolic links become [KindSymlinkRejected]. Anything else is of fallback.
func FromOSError(path string, err error, fallback Kind) *MoveError {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return NewError(KindPermissionDenied, path, err)

	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return NewError(KindNotFound, path, err)

	case errors.Is(err, syscall.ELOOP):
		return NewError(KindSymlinkRejected, path, err)

	default:
		return NewError(fallback, path, err)
	}
}

// Because returns a copy of the error carrying a human readable reason.
func (e *MoveError) Because(format string, args ...any) *MoveError {
	c := *e
	c.Reason = fmt.Sprintf(format, args...)

	return &c
}

func (e *MoveError) Error() string {
	var b strings.Builder

	if sentinel, ok := kindSentinels[e.Kind]; ok {
		b.WriteString(sentinel.Error())
	} else {
		b.WriteString(e.Kind.String())
	}

	if e.Path != "" {
		b.WriteString(": ")
		b.WriteString(e.Path)
	}

	if e.Kind == KindInsufficientSpace {
		fmt.Fprintf(&b, " (required %s, available %s)",
			humanize.IBytes(e.Required), humanize.IBytes(e.Available))
	}

	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the [Kind].
func (e *MoveError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]

	return ok && sentinel == target
}

// KindOf returns the [Kind] of the outermost [MoveError] in the chain.
func KindOf(err error) (Kind, bool) {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind, true
	}

	return 0, false
}
