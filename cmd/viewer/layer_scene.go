package main

import (
	"log"

	"github.com/cprohoda/learnwgpu/engine/colors"
	"github.com/cprohoda/learnwgpu/engine/core"
	wgpubackend "github.com/cprohoda/learnwgpu/engine/gfx/webgpu"
	"github.com/cprohoda/learnwgpu/engine/render"
	"github.com/cprohoda/learnwgpu/engine/scene"
)

// SceneLayer owns the frame state and drives the presenter. Space toggles
// the pipeline mode, Z toggles the shape, left mouse nudges the clear
// color, WASD/arrows move the camera.
type SceneLayer struct {
	presenter *wgpubackend.Presenter
	frame     *render.FrameState
	speed     float32
	clear     colors.Color
}

func NewSceneLayer(p *wgpubackend.Presenter, cfg core.Config) *SceneLayer {
	return &SceneLayer{
		presenter: p,
		speed:     cfg.CameraSpeed,
		clear:     colors.Color(cfg.ClearColor),
	}
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	cam := scene.NewCamera(float32(w) / float32(h))
	ctrl := scene.NewCameraController(cam, l.speed)
	l.frame = render.NewFrameState(l.clear, cam, ctrl)
}

func (l *SceneLayer) OnDetach(e *core.Engine) {}

func (l *SceneLayer) OnUpdate(e *core.Engine, dt float64) {
	l.frame.Update()
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {
	if err := l.presenter.RenderFrame(l.frame); err != nil {
		// Fatal presentation failure; nothing to recover, leave the loop.
		log.Printf("render: %v", err)
		e.Window.RequestClose()
	}
}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.frame.Camera.SetViewportPixels(v.W, v.H)
		return false // let the run loop reconfigure the presenter too
	case core.EventMouseButton:
		handled := l.frame.HandleEvent(ev)
		if handled {
			log.Printf("clear color now %v", l.frame.Clear)
		}
		return handled
	}
	return l.frame.HandleEvent(ev)
}
