package console

import "testing"

func TestColorEncoding(t *testing.T) {
	// The palette encoding is stable: base colors 0-7, light variants
	// 8-15, default out-of-band.
	if ColorBlack != 0 || ColorWhite != 7 {
		t.Errorf("base band = %d..%d, want 0..7", ColorBlack, ColorWhite)
	}
	if ColorLightBlack != 8 || ColorLightWhite != 15 {
		t.Errorf("light band = %d..%d, want 8..15", ColorLightBlack, ColorLightWhite)
	}
	if ColorDefault >= 0 {
		t.Errorf("ColorDefault = %d, want negative", ColorDefault)
	}

	pairs := []struct{ base, light Color }{
		{ColorBlack, ColorLightBlack},
		{ColorBlue, ColorLightBlue},
		{ColorGreen, ColorLightGreen},
		{ColorCyan, ColorLightCyan},
		{ColorRed, ColorLightRed},
		{ColorPink, ColorLightPink},
		{ColorYellow, ColorLightYellow},
		{ColorWhite, ColorLightWhite},
	}
	for _, p := range pairs {
		if p.light != p.base+8 {
			t.Errorf("light variant of %s = %d, want %d", p.base, p.light, p.base+8)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorBlack, "black"},
		{ColorPink, "pink"},
		{ColorWhite, "white"},
		{ColorLightBlue, "lightblue"},
		{ColorLightWhite, "lightwhite"},
		{ColorDefault, "default"},
		{Color(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.color.String(); got != tt.want {
				t.Errorf("Color.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"black", ColorBlack, true},
		{"Red", ColorRed, true},
		{"LIGHTYELLOW", ColorLightYellow, true},
		{" cyan ", ColorCyan, true},
		{"default", ColorDefault, true},
		{"magenta", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseColor(%q) = (%v, %v), want (%v, %v)",
					tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}
