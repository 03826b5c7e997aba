package render

import (
	"github.com/cprohoda/learnwgpu/engine/colors"
	"github.com/cprohoda/learnwgpu/engine/core"
	"github.com/cprohoda/learnwgpu/engine/scene"
)

// Mode selects which shader pipeline the frame draws with.
type Mode int

const (
	// ModeStandard draws the active shape with the textured pipeline
	// (pos+uv vertex buffer, texture+sampler and camera bind groups).
	ModeStandard Mode = iota
	// ModePositionColor draws a hardcoded 3-vertex triangle with the
	// bufferless vertex-color pipeline (no bind groups).
	ModePositionColor
)

// Next cycles to the only other mode. Both pipelines are compiled at
// startup, so cycling never recompiles anything.
func (m Mode) Next() Mode {
	if m == ModeStandard {
		return ModePositionColor
	}
	return ModeStandard
}

func (m Mode) String() string {
	if m == ModePositionColor {
		return "position-color"
	}
	return "standard"
}

// Per-press clear-color deltas for the primary pointer trigger.
const (
	clearDeltaR = 0.15
	clearDeltaG = 0.10
	clearDeltaB = 0.20
)

// FrameState is the per-frame render configuration: active shape, active
// pipeline mode, clear color and camera. It is owned by exactly one event
// loop and mutated synchronously by HandleEvent/Update; transitions are
// total and cannot fail.
type FrameState struct {
	Shape Shape
	Mode  Mode
	Clear colors.Color

	Camera     *scene.Camera
	Controller *scene.CameraController

	// Held state per physical key, tracked here so that toggle transitions
	// fire on the released->pressed edge only. The upstream repeat flag is
	// not trusted: a key event source may re-report presses while held.
	held map[core.Key]bool
}

// NewFrameState builds the initial state: first shape, first mode, the
// given clear color.
func NewFrameState(clear colors.Color, cam *scene.Camera, ctrl *scene.CameraController) *FrameState {
	return &FrameState{
		Shape:      ShapePentagon,
		Mode:       ModeStandard,
		Clear:      clear,
		Camera:     cam,
		Controller: ctrl,
		held:       map[core.Key]bool{},
	}
}

// HandleEvent applies one input event to the state machine. It reports
// whether the event was consumed.
func (f *FrameState) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventMouseButton:
		if e.Button == core.MouseButtonLeft && e.Down {
			f.AlterClear()
			return true
		}
	case core.EventKey:
		switch e.Key {
		case core.KeySpace:
			if f.pressEdge(e) {
				f.Mode = f.Mode.Next()
			}
			return true
		case core.KeyZ:
			if f.pressEdge(e) {
				f.Shape = f.Shape.Next()
			}
			return true
		default:
			if f.Controller != nil {
				return f.Controller.HandleEvent(ev)
			}
		}
	}
	return false
}

// pressEdge updates held tracking for the event's key and reports whether
// this event is a released->pressed edge. Repeats and duplicate presses
// while held never count, regardless of what the source's repeat flag says.
func (f *FrameState) pressEdge(e core.EventKey) bool {
	was := f.held[e.Key]
	f.held[e.Key] = e.Down
	return e.Down && !was
}

// AlterClear shifts the clear color by the fixed per-press deltas.
// Channels accumulate without clamping.
func (f *FrameState) AlterClear() {
	f.Clear = f.Clear.Add(clearDeltaR, clearDeltaG, clearDeltaB, 0)
}

// Update advances the per-frame state: camera motion from held directional
// keys. Called once per fixed tick, before the frame is drawn.
func (f *FrameState) Update() {
	if f.Controller != nil {
		f.Controller.Update()
	}
}
