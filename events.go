package dragarea

// EventStore receives every interaction event, for example to forward them
// into an ECS world (see the ecs module).
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data to area-level handlers and the
// EventStore.
type InteractionEvent struct {
	Type   EventType
	Index  int // paint-order index of the object; -1 for pan events
	Object any // the Drawable; nil for pan events
	X, Y   float64
	// Gesture fields (drag and pan events)
	StartX, StartY float64
	DeltaX, DeltaY float64 // cumulative offset since the gesture began
	// Click fields
	Button Button
	Count  int
}

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "drag-start"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag-end"
	case EventPanStart:
		return "pan-start"
	case EventPan:
		return "pan"
	case EventPanEnd:
		return "pan-end"
	case EventDoubleClick:
		return "double-click"
	case EventMiddleClick:
		return "middle-click"
	case EventRightClick:
		return "right-click"
	default:
		return "unknown"
	}
}

type eventHandler struct {
	id    uint32
	event EventType
	fn    func(InteractionEvent)
}

type handlerRegistry struct {
	handlers    []eventHandler
	nextID      uint32
	dispatching int
}

// CallbackHandle allows removing a registered area-level callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. It is safe to
// call from inside any callback, including the one being removed.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

func (r *handlerRegistry) remove(id uint32) {
	for i := range r.handlers {
		if r.handlers[i].id != id {
			continue
		}
		if r.dispatching > 0 {
			// Compacted once the outermost dispatch returns.
			r.handlers[i].fn = nil
			return
		}
		copy(r.handlers[i:], r.handlers[i+1:])
		r.handlers[len(r.handlers)-1] = eventHandler{}
		r.handlers = r.handlers[:len(r.handlers)-1]
		return
	}
}

// dispatch calls every live handler for ev.Type registered before the call
// started.
func (r *handlerRegistry) dispatch(ev InteractionEvent) {
	r.dispatching++
	n := len(r.handlers)
	for i := 0; i < n; i++ {
		h := r.handlers[i]
		if h.fn != nil && h.event == ev.Type {
			h.fn(ev)
		}
	}
	r.dispatching--
	if r.dispatching == 0 {
		r.compact()
	}
}

func (r *handlerRegistry) compact() {
	live := r.handlers[:0]
	for _, h := range r.handlers {
		if h.fn != nil {
			live = append(live, h)
		}
	}
	clear(r.handlers[len(live):])
	r.handlers = live
}

// On registers an area-level callback for one event type. Callbacks run
// synchronously inside the gesture or click call that produced the event and
// must not start another gesture.
func (a *Area[C]) On(event EventType, fn func(InteractionEvent)) CallbackHandle {
	a.handlers.nextID++
	id := a.handlers.nextID
	a.handlers.handlers = append(a.handlers.handlers, eventHandler{id: id, event: event, fn: fn})
	return CallbackHandle{id: id, reg: &a.handlers}
}

// SetEventStore sets the optional event sink.
func (a *Area[C]) SetEventStore(store EventStore) {
	a.store = store
}

func (a *Area[C]) emit(ev InteractionEvent) {
	a.handlers.dispatch(ev)
	if a.store != nil {
		a.store.EmitEvent(ev)
	}
}
