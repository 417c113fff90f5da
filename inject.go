package backdrop

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticScroll
	syntheticClick
	syntheticResize
)

// syntheticEvent is one queued input event. Coordinates are screen pixels,
// exactly as real mouse input would report them.
type syntheticEvent struct {
	kind          syntheticKind
	x, y          float64
	scroll        float64
	width, height int
}

// InjectPointer queues a pointer move to (x, y). The event is consumed on
// the next tick's input pass.
func (s *Scene) InjectPointer(x, y float64) {
	s.inject(syntheticEvent{kind: syntheticPointer, x: x, y: y})
}

// InjectScroll queues a jump to an absolute scroll offset.
func (s *Scene) InjectScroll(offset float64) {
	s.inject(syntheticEvent{kind: syntheticScroll, scroll: offset})
}

// InjectClick queues a pointer move to (x, y) followed by a click there.
// Consumes two ticks.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPointer(x, y)
	s.inject(syntheticEvent{kind: syntheticClick, x: x, y: y})
}

// InjectResize queues a viewport resize.
func (s *Scene) InjectResize(w, h int) {
	s.inject(syntheticEvent{kind: syntheticResize, width: w, height: h})
}

// InjectSweep queues pointer moves linearly interpolated from (fromX, fromY)
// to (toX, toY) over the given number of ticks (at least 2).
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (s *Scene) Pending() int {
	return len(s.injectQueue)
}

func (s *Scene) inject(evt syntheticEvent) {
	if s.phase != phaseMounted {
		return
	}
	s.injectQueue = append(s.injectQueue, evt)
}

// processInjectedInput pops one event and applies it. Returns true if an
// event was consumed (real input is skipped for that tick).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		s.movePointer(evt.x, evt.y)
	case syntheticScroll:
		s.scrollTo(evt.scroll)
	case syntheticClick:
		s.Click(evt.x, evt.y)
	case syntheticResize:
		s.Resize(evt.width, evt.height)
	}
	return true
}
