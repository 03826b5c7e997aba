package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + presenter and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newPresenter func(Window, Config) (Presenter, error)) error {
	// The window and the GPU surface require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	pres, err := newPresenter(win, cfg)
	if err != nil {
		return err
	}
	// The surface borrows the window; it must be torn down first, which the
	// deferred Shutdown guarantees relative to window destruction at exit.
	defer pres.Shutdown()

	w, h := win.FramebufferSize()
	pres.Resize(w, h)

	eng := &Engine{Window: win, Presenter: pres, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)

		handled := false
		eng.Layers.ForEachReverse(func(l Layer) bool {
			handled = l.OnEvent(eng, ev)
			return handled
		})
		if !handled {
			app.OnEvent(eng, ev)
		}

		if _, ok := ev.(EventResize); ok {
			// Zero dimensions (minimized window) are skipped; the presenter
			// keeps its previous configuration.
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			pres.Resize(fw, fh)
		}
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		// Run fixed updates
		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, float64(tick)/float64(time.Second))
			eng.Layers.ForEach(func(l Layer) {
				l.OnUpdate(eng, float64(tick)/float64(time.Second))
			})
			accum -= tick
			steps++
		}
		// Interpolation factor for rendering
		alpha := float64(accum) / float64(tick)

		// Render: layers draw through the presenter, then the app
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
		app.OnRender(eng, alpha)

		if eng.Stats.Tick(time.Now()) {
			win.SetTitle(fmt.Sprintf("%s | %.0f fps (%.2f ms)", cfg.Title, eng.Stats.FPS, eng.Stats.FrameMS))
		}
	}

	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(eng)
	}
	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
