package scene

import "github.com/go-gl/mathgl/mgl32"

// clipCorrection maps OpenGL clip space (z in [-1,1]) onto WebGPU clip
// space (z in [0,1]). mgl32's projection helpers target the GL convention.
// Column-major, like all mgl32 matrices.
var clipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a perspective look-at camera. ViewProj is a pure function of
// the exported fields; mutate them freely between frames.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	Aspect float32
	FovY   float32 // vertical field of view, degrees
	Near   float32
	Far    float32
}

// NewCamera returns the default camera: slightly above and behind the
// origin, looking at it.
func NewCamera(aspect float32) *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 1, 2},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: aspect,
		FovY:   45,
		Near:   0.1,
		Far:    100,
	}
}

// SetViewportPixels derives the aspect ratio from a surface size.
// Zero dimensions are ignored.
func (c *Camera) SetViewportPixels(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float32(w) / float32(h)
}

// ViewProj recomputes the combined view-projection matrix, including the
// WebGPU depth-range correction.
func (c *Camera) ViewProj() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	return clipCorrection.Mul4(proj).Mul4(view)
}
