package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is the simulation snapshot shown by the stats line.
type Stats struct {
	Mode      string
	LightsOn  bool
	Particles int
	Resets    uint64
	Frames    uint64
}

func (s Stats) String() string {
	light := "off"
	if s.LightsOn {
		light = "on"
	}
	return fmt.Sprintf("%s | light %s | smoke %d (%d resets) | tick %d", s.Mode, light, s.Particles, s.Resets, s.Frames)
}

// Debug draws the optional top-right overlays: FPS, heap allocation and simulation stats.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool
	// Stats is polled when the stats line refreshes. Nil hides the line.
	Stats func() Stats

	font       rl.Font
	frameCount uint32
	lines      [3]string
	memStats   runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the overlay font. Zero texture ID = raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

func (d *Debug) refresh() {
	if d.ShowFPS {
		d.lines[0] = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	if d.ShowMemAlloc {
		runtime.ReadMemStats(&d.memStats)
		d.lines[1] = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
	}
	if d.ShowStats && d.Stats != nil {
		d.lines[2] = d.Stats().String()
	}
}

// Draw renders the enabled overlays right-aligned, one per line. Call last in the frame.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc && !d.ShowStats {
		return
	}
	if d.frameCount%updateInterval == 0 {
		d.refresh()
	}
	d.frameCount++

	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)
	shown := [3]bool{d.ShowFPS, d.ShowMemAlloc, d.ShowStats && d.Stats != nil}
	for i, text := range d.lines {
		if !shown[i] || text == "" {
			continue
		}
		d.drawRight(text, screenW, y)
		y += lineHeight
	}
}

func (d *Debug) drawRight(text string, screenW, y float32) {
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-padding, y), fontSize, 1, rl.Green)
		return
	}
	w := float32(rl.MeasureText(text, fontSize))
	rl.DrawText(text, int32(screenW-w-padding), int32(y), fontSize, rl.Green)
}
