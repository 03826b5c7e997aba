package wgpubackend

import (
	"errors"
	"testing"
)

func TestClassifySurfaceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want SurfaceErrorKind
	}{
		{"timed out", errors.New("Surface timed out"), SurfaceErrorTimeout},
		{"timeout", errors.New("surface acquisition timeout"), SurfaceErrorTimeout},
		{"outdated", errors.New("Surface is outdated"), SurfaceErrorStale},
		{"lost", errors.New("Surface was lost"), SurfaceErrorStale},
		{"device lost", errors.New("Parent device is lost"), SurfaceErrorStale},
		{"oom", errors.New("Out of memory"), SurfaceErrorOutOfMemory},
		{"oom camelcase", errors.New("OutOfMemory during acquire"), SurfaceErrorOutOfMemory},
		{"validation", errors.New("validation error in draw"), SurfaceErrorUnknown},
		{"nil", nil, SurfaceErrorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySurfaceError(tt.err); got != tt.want {
				t.Errorf("ClassifySurfaceError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
