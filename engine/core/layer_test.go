package core

import "testing"

type recordLayer struct {
	name    string
	log     *[]string
	consume bool
}

func (l *recordLayer) OnAttach(e *Engine)             { *l.log = append(*l.log, l.name+":attach") }
func (l *recordLayer) OnDetach(e *Engine)             {}
func (l *recordLayer) OnUpdate(e *Engine, dt float64) {}
func (l *recordLayer) OnRender(e *Engine, a float64)  {}
func (l *recordLayer) OnEvent(e *Engine, ev Event) bool {
	*l.log = append(*l.log, l.name+":event")
	return l.consume
}

func TestLayerEventsRunInReverseOrderAndStopWhenConsumed(t *testing.T) {
	var log []string
	var ls LayerStack
	ls.Push(&recordLayer{name: "bottom", log: &log})
	ls.Push(&recordLayer{name: "top", log: &log, consume: true})

	handled := false
	ls.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(nil, EventCloseRequested{})
		return handled
	})

	if !handled {
		t.Error("event not reported handled")
	}
	if len(log) != 1 || log[0] != "top:event" {
		t.Errorf("dispatch log = %v, want only the top layer", log)
	}
}

func TestPushLayerAttaches(t *testing.T) {
	var log []string
	e := &Engine{}
	e.PushLayer(&recordLayer{name: "scene", log: &log})
	if len(log) != 1 || log[0] != "scene:attach" {
		t.Errorf("attach log = %v", log)
	}
	if _, ok := e.Layers.Pop(); !ok {
		t.Error("layer missing from stack after push")
	}
}
