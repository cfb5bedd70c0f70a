package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"harmonia/internal/ui/css"
)

//go:embed default.css
var defaultCSS string

// DefaultStylesheet is the compiled-in style for the title and the selector bar.
func DefaultStylesheet() *css.Stylesheet {
	return css.MustParse(defaultCSS)
}

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order. Resolved styles are cached until the sheet or the node list changes;
// call Invalidate after mutating a node's Class.
type Engine struct {
	sheet        *css.Stylesheet
	nodes        []*Node
	cachedStyles []css.ComputedStyle
	cacheValid   bool
	font         rl.Font
}

// New creates an engine using the default stylesheet and no nodes.
func New() *Engine {
	return &Engine{sheet: DefaultStylesheet()}
}

// LoadCSS parses a CSS file and merges it over the default stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read stylesheet %s", path)
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return errors.Wrapf(err, "parse stylesheet %s", path)
	}
	e.SetStylesheet(DefaultStylesheet().Merge(sheet))
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font for text rendering. On failure the engine keeps the default font.
// Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return errors.Wrapf(os.ErrNotExist, "load font %s", path)
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; a zero texture ID means raylib's default.
func (e *Engine) Font() rl.Font {
	return e.font
}

// MeasureText returns the pixel width of text at size with the engine's font.
func (e *Engine) MeasureText(text string, size int32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, float32(size), 1).X
	}
	return float32(rl.MeasureText(text, size))
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// Invalidate drops cached styles so the next Draw re-resolves them.
func (e *Engine) Invalidate() {
	e.cacheValid = false
}

// Style returns the resolved style for a class list and id.
func (e *Engine) Style(class, id string) css.ComputedStyle {
	return css.ResolveProps(e.sheet.Resolve(class, id))
}

// resolveBounds sets n.Bounds from style (left, top, width, height). Zero sizes keep the current value.
func resolveBounds(n *Node, style css.ComputedStyle) {
	if n.Fixed {
		return
	}
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	n.Bounds.X = float32(style.Left)
	n.Bounds.Y = float32(style.Top)
}

// Draw draws all nodes: background (rounded when border-radius is set), 1px border, then text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	if !e.cacheValid {
		e.cachedStyles = make([]css.ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cachedStyles[i] = e.Style(n.Class, n.ID)
			resolveBounds(n, e.cachedStyles[i])
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		rect := n.Bounds
		if !n.Fixed {
			if style.LeftPct >= 0 {
				rect.X = float32((screenW - int32(rect.Width)) * style.LeftPct / 100)
			}
			if style.TopPct >= 0 {
				rect.Y = float32((screenH - int32(rect.Height)) * style.TopPct / 100)
			}
		}

		if style.Background.A > 0 {
			if style.Radius > 0 {
				rl.DrawRectangleRounded(rect, style.Radius, 8, style.Background)
			} else {
				rl.DrawRectangleRec(rect, style.Background)
			}
		}
		if style.HasBorder && rect.Width > 0 && rect.Height > 0 {
			rl.DrawRectangleLines(int32(rect.X), int32(rect.Y), int32(rect.Width), int32(rect.Height), style.Border)
		}
		if n.Text != "" {
			e.drawText(n.Text, rect, style)
		}
	}
}

func (e *Engine) drawText(text string, rect rl.Rectangle, style css.ComputedStyle) {
	x := rect.X + float32(style.Padding)
	y := rect.Y + float32(style.Padding)
	if style.Center {
		x = rect.X + (rect.Width-e.MeasureText(text, style.FontSize))/2
		y = rect.Y + (rect.Height-float32(style.FontSize))/2
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(x, y), float32(style.FontSize), 1, style.Color)
		return
	}
	rl.DrawText(text, int32(x), int32(y), style.FontSize, style.Color)
}

// Close releases the loaded font.
func (e *Engine) Close() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}
