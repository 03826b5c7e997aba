package main

import (
	"fmt"
	"log"

	"github.com/cprohoda/learnwgpu/engine/core"
	wgpubackend "github.com/cprohoda/learnwgpu/engine/gfx/webgpu"
	"github.com/cprohoda/learnwgpu/engine/platform"
)

// App owns the scene layer and app-level keys (Escape quits).
type App struct {
	cfg   core.Config
	scene *SceneLayer
}

func (a *App) OnStart(e *core.Engine) {
	presenter, ok := e.Presenter.(*wgpubackend.Presenter)
	if !ok {
		panic("viewer requires the webgpu presenter")
	}
	a.scene = NewSceneLayer(presenter, a.cfg)
	e.PushLayer(a.scene)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Key == core.KeyEscape && v.Down {
			e.Window.RequestClose()
		}
	case core.EventCloseRequested:
		e.Window.RequestClose()
	}
}

func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	cfg := core.Config{
		Title:       "learnwgpu",
		Width:       800,
		Height:      600,
		VSync:       true,
		ClearColor:  [4]float32{0.1, 0.2, 0.2, 1.0},
		CameraSpeed: 0.2,
	}
	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newPresenter := func(win core.Window, cfg core.Config) (core.Presenter, error) {
		src, ok := win.(wgpubackend.SurfaceSource)
		if !ok {
			return nil, fmt.Errorf("window %T cannot provide a webgpu surface", win)
		}
		return wgpubackend.NewPresenter(src, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newPresenter); err != nil {
		log.Fatal(err)
	}
}
