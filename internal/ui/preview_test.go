package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/litescript/starfield/internal/catalog"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{-180, -180},
		{360, 0},
		{350, -10},
		{-190, 170},
		{540, 180},
	}

	for _, tt := range tests {
		got := normalizeAngle(tt.input)
		if math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestWrapRA(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{360, 0},
		{-10, 350},
		{370, 10},
	}
	for _, tt := range tests {
		if got := wrapRA(tt.input); math.Abs(got-tt.expected) > 0.001 {
			t.Errorf("wrapRA(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestProjectToScreen(t *testing.T) {
	m := PreviewModel{camRA: 180, camDec: 0}
	width, height := 100, 50

	// Camera center lands mid-canvas.
	x, y, visible := m.projectToScreen(180, 0, width, height)
	if !visible {
		t.Fatal("camera center should be visible")
	}
	if x != width/2 || y != height/2 {
		t.Errorf("center projected to (%d,%d), want (%d,%d)", x, y, width/2, height/2)
	}

	// Left FOV edge maps to x=0.
	x, _, visible = m.projectToScreen(180-fovRA/2, 0, width, height)
	if !visible || x != 0 {
		t.Errorf("left edge projected to x=%d (visible=%v), want 0", x, visible)
	}

	// Outside the FOV is invisible.
	if _, _, visible := m.projectToScreen(0, 0, width, height); visible {
		t.Error("antipode should not be visible")
	}
	if _, _, visible := m.projectToScreen(180, 80, width, height); visible {
		t.Error("star far above FOV should not be visible")
	}
}

func TestProjectToScreen_WrapsAroundZero(t *testing.T) {
	m := PreviewModel{camRA: 10, camDec: 0}
	// RA 355 is 15 degrees west of camera RA 10, well inside the FOV.
	_, _, visible := m.projectToScreen(355, 0, 100, 50)
	if !visible {
		t.Error("RA wrap-around near 0 should stay visible")
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		mag  float64
		want rune
	}{
		{-1.46, glyphBright},
		{1.4, glyphBright},
		{2.0, glyphMedium},
		{3.5, glyphDim},
		{6.0, glyphDim},
	}
	for _, tt := range tests {
		if got := starGlyph(tt.mag); got != tt.want {
			t.Errorf("starGlyph(%v) = %c, want %c", tt.mag, got, tt.want)
		}
	}
}

func TestClassColor_KnownAndFallback(t *testing.T) {
	if classColor('O') != classColors['O'] {
		t.Error("O should use its palette color")
	}
	if classColor('g') != classColors['G'] {
		t.Error("lower-case class should match upper-case color")
	}
	if classColor('P') != colorDefault {
		t.Error("unknown class should fall back to white")
	}
}

func TestWriteSkyMap(t *testing.T) {
	records := []catalog.StarRecord{
		{ID: 1, RADeg: 0, DecDeg: 90, Mag: -1.0},   // top-left corner cell
		{ID: 2, RADeg: 359.9, DecDeg: -90, Mag: 2}, // bottom-right corner cell
	}
	var b strings.Builder
	WriteSkyMap(&b, records, 40, 10)
	out := b.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d output lines, want 10 canvas rows + footer", len(lines))
	}
	if rune(lines[0][0]) == ' ' {
		t.Error("bright star at RA 0 / Dec +90 should occupy the top-left cell")
	}
	if !strings.Contains(lines[10], "2 stars") {
		t.Errorf("footer missing star count: %q", lines[10])
	}
}

func TestWriteSkyMap_BrightestWinsCell(t *testing.T) {
	records := []catalog.StarRecord{
		{ID: 1, RADeg: 180, DecDeg: 0, Mag: 5.0},
		{ID: 2, RADeg: 180, DecDeg: 0, Mag: -1.0},
	}
	var b strings.Builder
	WriteSkyMap(&b, records, 10, 5)
	if !strings.ContainsRune(b.String(), glyphBright) {
		t.Error("contested cell should keep the brighter star's glyph")
	}
}
