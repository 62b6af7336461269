package schema

import "time"

const (
	// DefaultRecencyWindow is the window within which auto-resolution prefers
	// candidates over older ones.
	DefaultRecencyWindow = 300 * time.Second

	// DefaultMaxDepth is the deepest level below the download base that
	// auto-resolution descends to.
	DefaultMaxDepth = 4

	// DefaultSpaceCushion is the headroom that must remain free on the
	// destination filesystem after a copy fallback.
	DefaultSpaceCushion uint64 = 4 << 20

	// StagingMarker is the infix of the hidden staging entries created inside
	// the completed base during a copy fallback.
	StagingMarker = ".handoff-staging."
)

// DefaultExcludePatterns returns the glob patterns (relative to the download
// base) of files that auto-resolution never considers.
func DefaultExcludePatterns() []string {
	return []string{
		"**/*.part",
		"**/*.aria2",
		"**/*.tmp",
		"**/*.crdownload",
		"**/.*" + StagingMarker + "*",
	}
}

// Flags are the behavioral switches of a single move.
type Flags struct {
	DryRun              bool
	PreserveMetadata    bool
	PreservePermissions bool
}

// ResolvePolicy controls how the source is determined when the request does
// not name one, and how an explicitly named one is interpreted.
type ResolvePolicy struct {
	// RecencyWindow of zero means unbounded.
	RecencyWindow    time.Duration
	FallbackToNewest bool
	MaxDepth         int
	ExcludePatterns  []string
	PromoteNested    bool
}

// DefaultResolvePolicy returns a [ResolvePolicy] holding the defaults.
func DefaultResolvePolicy() ResolvePolicy {
	return ResolvePolicy{
		RecencyWindow:    DefaultRecencyWindow,
		FallbackToNewest: true,
		MaxDepth:         DefaultMaxDepth,
		ExcludePatterns:  DefaultExcludePatterns(),
		PromoteNested:    true,
	}
}

// MoveRequest is everything the engine needs for a single invocation. It is
// constructed once by the caller and never mutated by the engine.
type MoveRequest struct {
	DownloadBase  string
	CompletedBase string

	// SourcePath is optional; when empty the source is auto-resolved.
	SourcePath string

	Flags        Flags
	Policy       ResolvePolicy
	SpaceCushion uint64
}
