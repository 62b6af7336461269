package main

import (
	"context"
	"errors"

	"github.com/desertwitch/handoff/internal/schema"
)

const (
	exitOK          = 0
	exitMoveFailed  = 1
	exitUsage       = 2
	exitSecurity    = 3
	exitInterrupted = 130
)

// exitCodeFor maps an error to the process exit code. Errors that are not
// engine errors stem from flags or configuration and are usage errors.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}

	kind, ok := schema.KindOf(err)
	if !ok {
		if errors.Is(err, context.Canceled) {
			return exitInterrupted
		}

		return exitUsage
	}

	switch kind {
	case schema.KindInvalidBase, schema.KindNotFound:
		return exitUsage

	case schema.KindSymlinkRejected, schema.KindInsecureBaseDirectory, schema.KindPermissionDenied:
		return exitSecurity

	case schema.KindInterrupted:
		return exitInterrupted

	case schema.KindDestinationExists, schema.KindInsufficientSpace, schema.KindCopyFailed,
		schema.KindVerificationFailed, schema.KindRaceDetected:
		return exitMoveFailed
	}

	return exitMoveFailed
}
