package wgpubackend

import "strings"

// SurfaceErrorKind classifies a frame-acquisition failure into the
// categories the run path cares about.
type SurfaceErrorKind int

const (
	// SurfaceErrorUnknown is any unclassified failure; treated as fatal.
	SurfaceErrorUnknown SurfaceErrorKind = iota
	// SurfaceErrorTimeout: log and skip the frame.
	SurfaceErrorTimeout
	// SurfaceErrorStale covers lost and outdated surfaces: reconfigure at
	// the current size and skip the frame.
	SurfaceErrorStale
	// SurfaceErrorOutOfMemory is unrecoverable.
	SurfaceErrorOutOfMemory
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceErrorTimeout:
		return "timeout"
	case SurfaceErrorStale:
		return "stale"
	case SurfaceErrorOutOfMemory:
		return "out of memory"
	default:
		return "unknown"
	}
}

// ClassifySurfaceError maps a GetCurrentTexture error onto a kind. The
// binding reports acquisition status in the error message ("Surface timed
// out", "Surface is outdated", "Surface was lost"), so classification
// matches on those, case-insensitively.
func ClassifySurfaceError(err error) SurfaceErrorKind {
	if err == nil {
		return SurfaceErrorUnknown
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "timed out") || strings.Contains(msg, "timeout"):
		return SurfaceErrorTimeout
	case strings.Contains(msg, "outdated") || strings.Contains(msg, "lost"):
		return SurfaceErrorStale
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return SurfaceErrorOutOfMemory
	default:
		return SurfaceErrorUnknown
	}
}
