package graphics

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"harmonia/internal/config"
)

// Window is the raylib window plus a registry of click and resize listeners. Listeners run
// on the frame loop goroutine; click listeners run in registration order until one returns true.
type Window struct {
	prefs   config.Window
	nextID  int
	clicks  []clickListener
	resizes []resizeListener
	open    bool
}

type clickListener struct {
	id int
	fn func(x, y float32, now time.Time) bool
}

type resizeListener struct {
	id int
	fn func(width, height int)
}

// NewWindow returns an unopened window for prefs.
func NewWindow(prefs config.Window) *Window {
	return &Window{prefs: prefs}
}

// Open creates the resizable window. A zero width or height takes the primary monitor's size.
func (w *Window) Open() {
	if w.open {
		return
	}
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.prefs.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	width, height := w.prefs.Width, w.prefs.Height
	rl.InitWindow(int32(width), int32(height), w.prefs.Title)
	if width == 0 || height == 0 {
		m := rl.GetCurrentMonitor()
		rl.SetWindowSize(rl.GetMonitorWidth(m), rl.GetMonitorHeight(m))
	}
	rl.SetExitKey(rl.KeyNull) // close via the window button
	if w.prefs.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.prefs.TargetFPS))
	}
	w.open = true
}

// Size returns the current window size in pixels.
func (w *Window) Size() (int, int) {
	if !w.open {
		return w.prefs.Width, w.prefs.Height
	}
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// OnClick registers fn for left mouse button presses. The returned func removes it.
func (w *Window) OnClick(fn func(x, y float32, now time.Time) bool) func() {
	w.nextID++
	id := w.nextID
	w.clicks = append(w.clicks, clickListener{id: id, fn: fn})
	return func() {
		for i, l := range w.clicks {
			if l.id == id {
				w.clicks = append(w.clicks[:i], w.clicks[i+1:]...)
				return
			}
		}
	}
}

// OnResize registers fn for window size changes. The returned func removes it.
func (w *Window) OnResize(fn func(width, height int)) func() {
	w.nextID++
	id := w.nextID
	w.resizes = append(w.resizes, resizeListener{id: id, fn: fn})
	return func() {
		for i, l := range w.resizes {
			if l.id == id {
				w.resizes = append(w.resizes[:i], w.resizes[i+1:]...)
				return
			}
		}
	}
}

// Listeners returns the number of registered click and resize listeners.
func (w *Window) Listeners() (clicks, resizes int) {
	return len(w.clicks), len(w.resizes)
}

// dispatch delivers this frame's input. Listener slices are copied so a listener may unregister itself.
func (w *Window) dispatch(now time.Time) {
	if rl.IsWindowResized() {
		width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
		for _, l := range append([]resizeListener(nil), w.resizes...) {
			l.fn(width, height)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		p := rl.GetMousePosition()
		for _, l := range append([]clickListener(nil), w.clicks...) {
			if l.fn(p.X, p.Y, now) {
				break
			}
		}
	}
}

// Run opens the window if needed and runs the frame loop until the window is closed.
// Each frame it dispatches input, calls update with the frame time, then draw inside
// BeginDrawing/EndDrawing. teardown runs before the window closes, on every exit path.
func (w *Window) Run(update func(now time.Time), draw func(), teardown func()) {
	w.Open()
	defer func() {
		if teardown != nil {
			teardown()
		}
		rl.CloseWindow()
		w.open = false
	}()

	for !rl.WindowShouldClose() {
		now := time.Now()
		w.dispatch(now)
		update(now)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
