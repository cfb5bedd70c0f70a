package css

import (
	"image/color"
	"testing"
)

const sheetText = `
/* selector bar */
.selector-bar { background: #0000004d; border: #ffffff1a; }
.mode-button, .title { color: rgba(255, 255, 255, 0.7); padding: 8px; }
.mode-button.active { background: #ffffff33; color: #fff; }
#title { font-size: 36; text-align: center; }
div p { color: #123456; }
`

func TestParse(t *testing.T) {
	sheet, err := Parse(sheetText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{".selector-bar", ".mode-button", ".title", ".mode-button.active", "#title"}
	if len(sheet.Rules) != len(want) {
		t.Fatalf("got %d rules: %+v", len(sheet.Rules), sheet.Rules)
	}
	for i, sel := range want {
		if sheet.Rules[i].Selector != sel {
			t.Errorf("rule %d selector = %q, want %q", i, sheet.Rules[i].Selector, sel)
		}
	}
}

func TestParseUnterminated(t *testing.T) {
	if _, err := Parse(".a { color: #fff;"); err == nil {
		t.Fatal("expected error for unterminated block")
	}
	if _, err := Parse(".a { color: #fff; } junk"); err == nil {
		t.Fatal("expected error for trailing junk")
	}
}

func TestResolveActiveButton(t *testing.T) {
	sheet := MustParse(sheetText)

	idle := ResolveProps(sheet.Resolve("mode-button", ""))
	if idle.Color != (color.RGBA{255, 255, 255, 179}) {
		t.Errorf("idle color = %v", idle.Color)
	}
	if idle.Background.A != 0 {
		t.Errorf("idle background = %v, want transparent", idle.Background)
	}
	if idle.Padding != 8 {
		t.Errorf("padding = %d", idle.Padding)
	}

	active := ResolveProps(sheet.Resolve("mode-button active", ""))
	if active.Background != (color.RGBA{255, 255, 255, 0x33}) {
		t.Errorf("active background = %v", active.Background)
	}
	if active.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("active color = %v", active.Color)
	}
}

func TestResolveByID(t *testing.T) {
	sheet := MustParse(sheetText)
	st := ResolveProps(sheet.Resolve("", "title"))
	if st.FontSize != 36 || !st.Center {
		t.Errorf("title style = %+v", st)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		sel, classes, id string
		want             bool
	}{
		{".a", "a b", "", true},
		{".a.b", "b a", "", true},
		{".a.c", "a b", "", false},
		{"#x", "", "x", true},
		{"#x", "x", "", false},
		{".a", "", "a", false},
		{"", "a", "a", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.sel, tt.classes, tt.id); got != tt.want {
			t.Errorf("Matches(%q, %q, %q) = %v", tt.sel, tt.classes, tt.id, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#1a1a2e", color.RGBA{0x1a, 0x1a, 0x2e, 255}, true},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, true},
		{"rgba(10, 20, 30, 0.5)", color.RGBA{10, 20, 30, 128}, true},
		{"transparent", color.RGBA{}, true},
		{"#12", color.RGBA{}, false},
		{"rgba(1,2,3)", color.RGBA{}, false},
		{"blue", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMerge(t *testing.T) {
	base := MustParse(".a { color: #000; }")
	over := MustParse(".a { color: #fff; }")
	st := ResolveProps(base.Merge(over).Resolve("a", ""))
	if st.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("merged color = %v", st.Color)
	}
	if got := len((*Stylesheet)(nil).Merge(over).Rules); got != 1 {
		t.Errorf("nil merge rules = %d", got)
	}
}

func TestParsePxPct(t *testing.T) {
	if n, ok := ParsePx(" 12px "); !ok || n != 12 {
		t.Errorf("ParsePx = %d, %v", n, ok)
	}
	if _, ok := ParsePx("12em"); ok {
		t.Error("ParsePx accepted em")
	}
	if n, ok := ParsePct("50%"); !ok || n != 50 {
		t.Errorf("ParsePct = %d, %v", n, ok)
	}
	if _, ok := ParsePct("150%"); ok {
		t.Error("ParsePct accepted 150%")
	}
}
