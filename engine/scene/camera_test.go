package scene

import (
	"math"
	"testing"

	"github.com/cprohoda/learnwgpu/engine/core"
	"github.com/go-gl/mathgl/mgl32"
)

func distance(c *Camera) float32 {
	return c.Target.Sub(c.Eye).Len()
}

func TestForwardStepLargerThanDistanceDoesNotMove(t *testing.T) {
	cam := NewCamera(1)
	cam.Eye = mgl32.Vec3{0, 0, 1} // distance 1
	cc := NewCameraController(cam, 2.0)
	cc.HandleEvent(core.EventKey{Key: core.KeyW, Down: true})

	before := cam.Eye
	cc.Update()
	if cam.Eye != before {
		t.Errorf("eye moved to %v with step > remaining distance", cam.Eye)
	}
	if distance(cam) <= 0 {
		t.Errorf("distance to target = %v, want > 0", distance(cam))
	}
}

func TestForwardNeverCrossesTarget(t *testing.T) {
	cam := NewCamera(1)
	cc := NewCameraController(cam, 0.2)
	cc.HandleEvent(core.EventKey{Key: core.KeyW, Down: true})

	prev := distance(cam)
	for i := 0; i < 200; i++ {
		cc.Update()
		d := distance(cam)
		if d <= 0 {
			t.Fatalf("iteration %d: eye reached or crossed the target (distance %v)", i, d)
		}
		if d > prev+1e-5 {
			t.Fatalf("iteration %d: distance grew from %v to %v while moving forward", i, prev, d)
		}
		prev = d
	}
}

func TestBackwardMovesAway(t *testing.T) {
	cam := NewCamera(1)
	cc := NewCameraController(cam, 0.2)
	cc.HandleEvent(core.EventKey{Key: core.KeyS, Down: true})

	before := distance(cam)
	cc.Update()
	after := distance(cam)
	if after <= before {
		t.Errorf("distance after backward step = %v, want > %v", after, before)
	}
}

func TestStrafePreservesTargetDistance(t *testing.T) {
	tests := []struct {
		name string
		key  core.Key
	}{
		{"strafe right", core.KeyD},
		{"strafe left", core.KeyA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(1)
			cc := NewCameraController(cam, 0.2)
			cc.HandleEvent(core.EventKey{Key: tt.key, Down: true})

			before := distance(cam)
			start := cam.Eye
			for i := 0; i < 10; i++ {
				cc.Update()
			}
			after := distance(cam)
			if math.Abs(float64(after-before)) > 1e-4 {
				t.Errorf("distance drifted from %v to %v while strafing", before, after)
			}
			if cam.Eye == start {
				t.Error("eye did not move while strafing")
			}
		})
	}
}

func TestControllerHandlesDirectionalKeysOnly(t *testing.T) {
	cam := NewCamera(1)
	cc := NewCameraController(cam, 0.2)

	tests := []struct {
		name string
		ev   core.Event
		want bool
	}{
		{"forward key", core.EventKey{Key: core.KeyW, Down: true}, true},
		{"arrow alias", core.EventKey{Key: core.KeyLeft, Down: true}, true},
		{"toggle key", core.EventKey{Key: core.KeySpace, Down: true}, false},
		{"mouse", core.EventMouseButton{Button: core.MouseButtonLeft, Down: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cc.HandleEvent(tt.ev); got != tt.want {
				t.Errorf("HandleEvent(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestReleasedKeyStopsMotion(t *testing.T) {
	cam := NewCamera(1)
	cc := NewCameraController(cam, 0.2)

	cc.HandleEvent(core.EventKey{Key: core.KeyW, Down: true})
	cc.Update()
	moved := cam.Eye

	cc.HandleEvent(core.EventKey{Key: core.KeyW, Down: false})
	cc.Update()
	if cam.Eye != moved {
		t.Errorf("eye moved to %v after key release", cam.Eye)
	}
}

func TestViewProjIsPureFunctionOfFields(t *testing.T) {
	cam := NewCamera(800.0 / 600.0)
	a := cam.ViewProj()
	b := cam.ViewProj()
	if a != b {
		t.Error("two ViewProj calls with identical fields differ")
	}

	cam.Eye = mgl32.Vec3{1, 1, 2}
	if c := cam.ViewProj(); c == a {
		t.Error("ViewProj unchanged after moving the eye")
	}
}

func TestSetViewportPixelsIgnoresZeroDimensions(t *testing.T) {
	cam := NewCamera(2)
	cam.SetViewportPixels(0, 600)
	cam.SetViewportPixels(800, 0)
	if cam.Aspect != 2 {
		t.Errorf("aspect = %v, want unchanged 2", cam.Aspect)
	}
	cam.SetViewportPixels(800, 600)
	if want := float32(800.0 / 600.0); cam.Aspect != want {
		t.Errorf("aspect = %v, want %v", cam.Aspect, want)
	}
}

func TestClipCorrectionMapsDepthRange(t *testing.T) {
	// GL clip z in [-1,1] must land in WebGPU's [0,1].
	near := clipCorrection.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := clipCorrection.Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	if near.Z() != 0 {
		t.Errorf("z=-1 maps to %v, want 0", near.Z())
	}
	if far.Z() != 1 {
		t.Errorf("z=1 maps to %v, want 1", far.Z())
	}
}
