// Package dragarea is a drag-and-drop engine for drawable objects placed on
// a 2D surface.
//
// Client code supplies objects that draw themselves and report their extent.
// The [Area] owns everything between the pointer and those objects: hit
// testing, promotion to the top of the paint order, drag tracking with
// boundary clamping, optional canvas panning, and click dispatch.
//
// The Area is toolkit independent. It is generic over the drawing context
// passed to [Drawable.Draw], so the same engine runs inside an Ebitengine
// window (see package ebitenhost) or a terminal (see package termhost). A
// host forwards decoded pointer gestures and asks for a frame:
//
//	area := dragarea.New[*ebiten.Image](500, 500)
//	area.Add(square, 100, 100)
//
//	area.BeginGesture(x, y)     // pointer pressed
//	area.UpdateGesture(dx, dy)  // offset since the press
//	area.EndGesture()           // pointer released
//
//	if err := area.Render(screen, w, h); err != nil { ... }
//
// # Drawables
//
// A [Drawable] only has to draw itself and report its [Limits]. Everything
// else is optional: implement [Container] for a custom hit region,
// [Scroller] to control where panning may start, [Retainer] to remove the
// object lazily, and [DoubleClicker], [MiddleClicker] or [RightClicker] to
// receive clicks. Embedding [Callbacks] covers the click and removal
// capabilities with plain func fields.
//
// Objects the caller keeps mutating between frames can be wrapped in
// [Shared], which guards them with a read/write lock.
//
// # Panning
//
// A scrollable area ([NewScrollable]) pans when a gesture starts on a point
// every object allows scrolling at. Objects in a scrollable area are not
// clamped to the surface. [Area.ScrollTo] animates the pan offset with
// [gween] tweens advanced by [Area.Tick].
//
// [gween]: https://github.com/tanema/gween
package dragarea
