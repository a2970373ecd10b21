package layout

import "testing"

func TestClassifyAuto(t *testing.T) {
	b := DefaultBreakpoint()
	tests := []struct {
		name   string
		w, h   int
		expect Orientation
	}{
		{"classic 80x24", 80, 24, Landscape},
		{"tall 100x40", 100, 40, Portrait},
		{"wide 160x40", 160, 40, Landscape},
		{"narrow but short", 60, 10, Portrait},
		{"exact ratio", 90, 30, Landscape},
		{"zero height", 200, 0, Portrait},
		{"negative height", 200, -3, Portrait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Classify(tt.w, tt.h); got != tt.expect {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.expect)
			}
		})
	}
}

func TestClassifyForced(t *testing.T) {
	p := Breakpoint{Mode: ModePortrait}
	if got := p.Classify(500, 10); got != Portrait {
		t.Errorf("forced portrait = %v", got)
	}
	l := Breakpoint{Mode: ModeLandscape}
	if got := l.Classify(10, 500); got != Landscape {
		t.Errorf("forced landscape = %v", got)
	}
}

func TestClassifyZeroRatioUsesDefault(t *testing.T) {
	b := Breakpoint{MinCols: 0}
	if got := b.Classify(90, 30); got != Landscape {
		t.Errorf("Classify with zero ratio = %v, want landscape", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{"": ModeAuto, "AUTO": ModeAuto, "portrait": ModePortrait, " Landscape ": ModeLandscape}
	for in, want := range tests {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("square"); err == nil {
		t.Error("ParseMode(\"square\") should fail")
	}
}

func TestOrientationString(t *testing.T) {
	if Portrait.String() != "portrait" || Landscape.String() != "landscape" {
		t.Errorf("String() = %q, %q", Portrait, Landscape)
	}
}
