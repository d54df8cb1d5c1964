package ecs

import (
	"testing"

	"github.com/phanxgames/dragarea"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type recorder struct{}

func (recorder) Draw(*[]string, float64, float64) error { return nil }
func (recorder) Limits() dragarea.Limits { return dragarea.Limits{PosX: 100, PosY: 100} }

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dragarea.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dragarea.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dragarea.InteractionEvent{
		Type:   dragarea.EventDragStart,
		Index:  2,
		X:      100,
		Y:      200,
		Button: dragarea.ButtonPrimary,
	})
	store.EmitEvent(dragarea.InteractionEvent{
		Type:   dragarea.EventPan,
		Index:  -1,
		DeltaX: 5,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != dragarea.EventDragStart || e.Index != 2 || e.X != 100 || e.Y != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != dragarea.EventPan || e.DeltaX != 5 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_FromArea(t *testing.T) {
	world := donburi.NewWorld()
	area := dragarea.New[*[]string](500, 500)
	area.SetEventStore(NewDonburiStore(world))
	area.Add(recorder{}, 100, 100)

	var types []dragarea.EventType
	InteractionEventType.Subscribe(world, func(w donburi.World, e dragarea.InteractionEvent) {
		types = append(types, e.Type)
	})

	area.BeginGesture(150, 150)
	area.UpdateGesture(10, 0)
	area.EndGesture()
	area.Click(dragarea.ButtonSecondary, 1, 150, 150)
	events.ProcessAllEvents(world)

	want := []dragarea.EventType{
		dragarea.EventDragStart, dragarea.EventDrag, dragarea.EventDragEnd, dragarea.EventRightClick,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestSubscribeType(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var drags int
	SubscribeType(world, dragarea.EventDrag, func(w donburi.World, e dragarea.InteractionEvent) {
		drags++
	})
	store.EmitEvent(dragarea.InteractionEvent{Type: dragarea.EventDrag})
	store.EmitEvent(dragarea.InteractionEvent{Type: dragarea.EventPan})
	store.EmitEvent(dragarea.InteractionEvent{Type: dragarea.EventDrag})
	events.ProcessAllEvents(world)

	if drags != 2 {
		t.Errorf("drags = %d, want 2", drags)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e dragarea.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e dragarea.InteractionEvent) {
		count2++
	})

	store.EmitEvent(dragarea.InteractionEvent{Type: dragarea.EventDoubleClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
