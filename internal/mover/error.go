package mover

import "errors"

var (
	// ErrHashMismatch is an error that occurs when the staged copy of a file
	// reads back differently than the source did, this usually means that
	// there are underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrTreeMismatch is an error that occurs when the staged tree differs
	// from the source in total size or number of entries.
	ErrTreeMismatch = errors.New("staged tree does not match source")

	// ErrUnsupportedType is an error that occurs when the source tree
	// contains a device, socket or FIFO.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrDestinationAppeared is an error that occurs when the destination was
	// created by someone else while the copy was being staged.
	ErrDestinationAppeared = errors.New("destination appeared during copy")

	// ErrNestedBases is an error that occurs when one base directory is
	// contained in the other.
	ErrNestedBases = errors.New("base directories must not be nested")
)
