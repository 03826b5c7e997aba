package scene

import (
	"github.com/cprohoda/learnwgpu/engine/core"
)

// CameraController: W/Up forward, S/Down back, A/Left and D/Right strafe.
// Forward motion is clamped so the eye never reaches or crosses the target;
// strafing orbits at the current target distance. Not full 3-D movement,
// but enough to inspect the scene.
type CameraController struct {
	Speed  float32
	Camera *Camera

	forward, backward, left, right bool
}

func NewCameraController(cam *Camera, speed float32) *CameraController {
	return &CameraController{Speed: speed, Camera: cam}
}

// HandleEvent records held state for the directional keys. Repeats are
// harmless here since held flags are level, not edge, triggered.
func (cc *CameraController) HandleEvent(ev core.Event) bool {
	e, ok := ev.(core.EventKey)
	if !ok {
		return false
	}
	switch e.Key {
	case core.KeyW, core.KeyUp:
		cc.forward = e.Down
	case core.KeyS, core.KeyDown:
		cc.backward = e.Down
	case core.KeyA, core.KeyLeft:
		cc.left = e.Down
	case core.KeyD, core.KeyRight:
		cc.right = e.Down
	default:
		return false
	}
	return true
}

// Update moves the camera eye by one step per held direction.
func (cc *CameraController) Update() {
	c := cc.Camera

	forward := c.Target.Sub(c.Eye)
	dist := forward.Len()
	if dist == 0 {
		return
	}
	dir := forward.Mul(1 / dist)

	// Only close in while there is more than one step of distance left, so
	// the eye cannot land on or pass the target.
	if cc.forward && dist > cc.Speed {
		c.Eye = c.Eye.Add(dir.Mul(cc.Speed))
	}
	if cc.backward {
		c.Eye = c.Eye.Sub(dir.Mul(cc.Speed))
	}

	right := dir.Cross(c.Up)

	// Re-read after the forward/backward step; strafing keeps the new
	// target distance constant.
	forward = c.Target.Sub(c.Eye)
	dist = forward.Len()

	if cc.right {
		c.Eye = c.Target.Sub(forward.Add(right.Mul(cc.Speed)).Normalize().Mul(dist))
	}
	if cc.left {
		c.Eye = c.Target.Sub(forward.Sub(right.Mul(cc.Speed)).Normalize().Mul(dist))
	}
}
