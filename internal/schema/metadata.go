package schema

import (
	"time"

	"golang.org/x/sys/unix"
)

// Metadata is a snapshot of the attributes of a filesystem object, as
// returned by a non-following stat call.
type Metadata struct {
	Device     uint64
	Inode      uint64
	Perms      uint32
	UID        uint32
	GID        uint32
	AccessedAt unix.Timespec
	ModifiedAt unix.Timespec
	Size       int64
	IsDir      bool
	IsRegular  bool
	IsSymlink  bool
	SymlinkTo  string
}

// ModTime returns the modification time as [time.Time].
func (m *Metadata) ModTime() time.Time {
	return time.Unix(m.ModifiedAt.Unix())
}

// IsSpecial reports whether the object is neither a directory, a regular file
// nor a symbolic link (devices, sockets, FIFOs).
func (m *Metadata) IsSpecial() bool {
	return !m.IsDir && !m.IsRegular && !m.IsSymlink
}
