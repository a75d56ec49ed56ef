// Package ui renders the parsed catalog as a terminal sky map.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/starfield/internal/catalog"
)

const (
	// Field of view in degrees
	fovRA  = 120.0
	fovDec = 60.0

	// Camera pan step per keypress
	panStep = 10.0

	// Star glyphs by magnitude
	glyphBright = '✶' // mag < 1.5
	glyphMedium = '✸' // mag 1.5-3.0
	glyphDim    = '·' // mag >= 3.0
)

// classColors approximate the material palette in terminal colors.
var classColors = map[byte]lipgloss.Color{
	'O': "#91b5ff",
	'W': "#91b5ff",
	'B': "#a1bfff",
	'A': "#d4dfff",
	'F': "#f7f2ff",
	'G': "#ffebe0",
	'K': "#ffd9b3",
	'M': "#ffb36b",
	'C': "#ffb36b",
	'S': "#ffb36b",
}

const colorDefault = lipgloss.Color("#ffffff")

// PreviewModel renders catalog stars on an equatorial-coordinate canvas.
type PreviewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camRA  float64
	camDec float64

	records []catalog.StarRecord
}

// NewPreview creates a preview centered on the celestial equator.
func NewPreview(records []catalog.StarRecord) PreviewModel {
	return PreviewModel{
		camRA:   180,
		camDec:  0,
		records: records,
	}
}

// Init returns nil cmd.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.camRA = wrapRA(m.camRA - panStep)
		case "right", "l":
			m.camRA = wrapRA(m.camRA + panStep)
		case "up", "k":
			m.camDec = clamp(m.camDec+panStep, -90, 90)
		case "down", "j":
			m.camDec = clamp(m.camDec-panStep, -90, 90)
		}
	}
	return m, nil
}

// View renders the preview.
func (m PreviewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky preview requires a larger terminal"
	}

	viewHeight := m.height - 3

	canvas := make([][]rune, viewHeight)
	colors := make([][]lipgloss.Color, viewHeight)
	mags := make([][]float64, viewHeight)
	for y := 0; y < viewHeight; y++ {
		canvas[y] = make([]rune, m.width)
		colors[y] = make([]lipgloss.Color, m.width)
		mags[y] = make([]float64, m.width)
		for x := 0; x < m.width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236"
			mags[y][x] = 99
		}
	}

	var brightest *catalog.StarRecord
	for i := range m.records {
		star := &m.records[i]
		x, y, visible := m.projectToScreen(star.RADeg, star.DecDeg, m.width, viewHeight)
		if !visible || x < 0 || x >= m.width || y < 0 || y >= viewHeight {
			continue
		}
		// Brightest star wins a contested cell.
		if star.Mag >= mags[y][x] {
			continue
		}
		mags[y][x] = star.Mag
		canvas[y][x] = starGlyph(star.Mag)
		colors[y][x] = classColor(star.SpectralClass)

		if brightest == nil || star.Mag < brightest.Mag {
			brightest = star
		}
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	for y := 0; y < viewHeight; y++ {
		for x := 0; x < m.width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus(brightest))

	return b.String()
}

func (m PreviewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("Sky Preview")
	compass := dimStyle.Render(fmt.Sprintf("RA:%.0f° Dec:%.0f°", m.camRA, m.camDec))
	count := dimStyle.Render(fmt.Sprintf("%d stars", len(m.records)))

	return fmt.Sprintf("%s | %s | %s", title, compass, count)
}

func (m PreviewModel) renderStatus(brightest *catalog.StarRecord) string {
	if brightest == nil {
		return "No stars in view"
	}
	name := brightest.Name
	if name == "" {
		name = fmt.Sprintf("HR %d", brightest.ID)
	}
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return accentStyle.Render(fmt.Sprintf(">>> %s | mag %.2f | RA:%.1f° Dec:%.1f°",
		name, brightest.Mag, brightest.RADeg, brightest.DecDeg))
}

// projectToScreen converts RA/Dec to screen coordinates relative to the
// camera center.
func (m PreviewModel) projectToScreen(raDeg, decDeg float64, width, height int) (int, int, bool) {
	dRA := normalizeAngle(raDeg - m.camRA)
	dDec := decDeg - m.camDec

	if dRA < -fovRA/2 || dRA > fovRA/2 {
		return 0, 0, false
	}
	if dDec < -fovDec/2 || dDec > fovDec/2 {
		return 0, 0, false
	}

	x := int((dRA + fovRA/2) / fovRA * float64(width))
	y := int((fovDec/2 - dDec) / fovDec * float64(height))

	return x, y, true
}

// starGlyph returns the glyph for a star based on its magnitude; brighter
// stars get more prominent symbols.
func starGlyph(mag float64) rune {
	switch {
	case mag < 1.5:
		return glyphBright
	case mag < 3.0:
		return glyphMedium
	default:
		return glyphDim
	}
}

func classColor(cls byte) lipgloss.Color {
	if cls >= 'a' && cls <= 'z' {
		cls -= 'a' - 'A'
	}
	if c, ok := classColors[cls]; ok {
		return c
	}
	return colorDefault
}

// normalizeAngle wraps an angle to the -180..+180 range.
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// wrapRA wraps right ascension to 0..360.
func wrapRA(ra float64) float64 {
	for ra < 0 {
		ra += 360
	}
	for ra >= 360 {
		ra -= 360
	}
	return ra
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the interactive preview and blocks until quit.
func Run(records []catalog.StarRecord) error {
	p := tea.NewProgram(NewPreview(records), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
