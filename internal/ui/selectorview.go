package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"harmonia/internal/mode"
	"harmonia/internal/selector"
)

// SelectorView turns the selector's laid-out buttons into styled nodes, plus a title block
// naming the current mode. It owns its nodes and refreshes them in Sync.
type SelectorView struct {
	engine      *Engine
	sel         *selector.Selector
	bar         *Node
	buttons     []*Node
	title       *Node
	description *Node
	synced      mode.Mode
	width       int
	height      int
}

// NewSelectorView binds sel to engine. The selector measures labels with the engine's font.
func NewSelectorView(engine *Engine, sel *selector.Selector) *SelectorView {
	v := &SelectorView{
		engine:      engine,
		sel:         sel,
		bar:         &Node{Type: "panel", Class: "selector-bar", Fixed: true},
		title:       NewNode("label", "", "mode-title", ""),
		description: NewNode("label", "", "mode-description", ""),
		synced:      -1,
	}
	sel.Measure = func(text string) float32 {
		return engine.MeasureText(text, engine.Style("mode-button", "").FontSize)
	}
	for _, b := range sel.Buttons() {
		v.buttons = append(v.buttons, &Node{Type: "button", Text: b.Label, Fixed: true})
	}
	nodes := []*Node{v.title, v.description, v.bar}
	engine.SetNodes(append(nodes, v.buttons...))
	return v
}

// Sync re-lays out the bar when the window size changed and restyles buttons when the mode changed.
func (v *SelectorView) Sync(width, height int) {
	if width != v.width || height != v.height {
		v.sel.Layout(width, height)
		v.width, v.height = width, height
		v.synced = -1
	}
	if v.synced == v.sel.Current() {
		return
	}
	v.bar.Bounds = toRect(v.sel.Bar())
	for i, b := range v.sel.Buttons() {
		n := v.buttons[i]
		n.Bounds = toRect(b.Bounds)
		n.Class = "mode-button"
		if b.Active {
			n.Class += " active"
		}
	}
	cfg := v.sel.Current().Config()
	v.title.Text = cfg.Name
	v.description.Text = cfg.Description
	v.synced = v.sel.Current()
	v.engine.Invalidate()
}

// Draw syncs to the current window size and draws all nodes.
func (v *SelectorView) Draw() {
	v.Sync(rl.GetScreenWidth(), rl.GetScreenHeight())
	v.engine.Draw()
}

func toRect(r selector.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}
