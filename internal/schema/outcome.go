package schema

import (
	"fmt"
	"time"
)

// Method is the way a move was (or, in a dry-run, would be) carried out.
type Method int

const (
	// MethodAtomicRename is a single same-filesystem rename.
	MethodAtomicRename Method = iota

	// MethodCopyFallback is a staged, verified cross-filesystem copy.
	MethodCopyFallback
)

func (m Method) String() string {
	switch m {
	case MethodAtomicRename:
		return "atomic-rename"
	case MethodCopyFallback:
		return "copy-fallback"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ResolvedSource is the concrete, validated source of a move.
type ResolvedSource struct {
	Path        string
	IsDirectory bool
	SizeBytes   uint64
	EntryCount  int
	ModifiedAt  time.Time
	Metadata    *Metadata
}

// DiskSpaceReport is the result of a free space preflight. It is computed
// immediately before it is needed and never cached.
type DiskSpaceReport struct {
	Path           string
	RequiredBytes  uint64
	AvailableBytes uint64
	CushionBytes   uint64

	// Unknown is set when the platform could not report free space.
	Unknown bool
}

// Warning is a non-fatal problem encountered during an otherwise successful
// move (metadata that could not be carried over, a source that could not be
// removed).
type Warning struct {
	Step string
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %v", w.Step, w.Path, w.Err)
}

// MoveOutcome is the result of a successful (or dry-run) move.
type MoveOutcome struct {
	Method          Method
	BytesMoved      uint64
	SourcePath      string
	DestinationPath string
	DryRun          bool
	Warnings        []Warning
	Space           *DiskSpaceReport
}

// AddWarning appends a [Warning] to the outcome.
func (o *MoveOutcome) AddWarning(step string, path string, err error) {
	o.Warnings = append(o.Warnings, Warning{Step: step, Path: path, Err: err})
}
