// Package palette maps stellar spectral classes to billboard materials.
package palette

import "strings"

// Classes lists the ten spectral class letters with defined colors, in
// rough temperature order (hot blue O through cool orange M; W shares O,
// carbon C and S-type stars share M).
const Classes = "OWBAFGKMCS"

// RGB is a color triple with channels in [0,1].
type RGB [3]float64

// Material describes the shared billboard material for one spectral class.
// The color doubles as base and emissive factor; base alpha is fixed at 1.
type Material struct {
	Class     byte // class letter; 0 for the default material
	Color     RGB  // contrast-squared color
	Metallic  float64
	Roughness float64
}

// baseColors holds the pre-contrast colors per class letter.
var baseColors = map[byte]RGB{
	'O': {0.57, 0.71, 1.00},
	'W': {0.57, 0.71, 1.00},
	'B': {0.63, 0.75, 1.00},
	'A': {0.83, 0.875, 1.00},
	'F': {0.97, 0.95, 1.00},
	'G': {1.00, 0.92, 0.88},
	'K': {1.00, 0.85, 0.70},
	'M': {1.00, 0.70, 0.42},
	'C': {1.00, 0.70, 0.42},
	'S': {1.00, 0.70, 0.42},
}

// defaultColor is used for any class outside the ten known letters.
var defaultColor = RGB{1, 1, 1}

// Palette is the fixed class-to-material table, built once at startup and
// read-only afterward.
type Palette struct {
	materials [len(Classes)]Material
	fallback  Material
}

// Build creates one material per known class plus the white default.
func Build() *Palette {
	p := &Palette{fallback: newMaterial(0, defaultColor)}
	for i := 0; i < len(Classes); i++ {
		p.materials[i] = newMaterial(Classes[i], baseColors[Classes[i]])
	}
	return p
}

// newMaterial squares each channel for contrast and fixes the PBR factors.
func newMaterial(cls byte, c RGB) Material {
	return Material{
		Class:     cls,
		Color:     RGB{c[0] * c[0], c[1] * c[1], c[2] * c[2]},
		Metallic:  0,
		Roughness: 1,
	}
}

// ClassIndex returns the position of cls in Classes, or -1 for letters
// outside the ten known classes. Lower-case letters match their class.
func ClassIndex(cls byte) int {
	if cls >= 'a' && cls <= 'z' {
		cls -= 'a' - 'A'
	}
	return strings.IndexByte(Classes, cls)
}

// Lookup returns the material for a spectral class letter. The lookup is
// total: anything outside the known classes resolves to the white default.
func (p *Palette) Lookup(cls byte) Material {
	if i := ClassIndex(cls); i >= 0 {
		return p.materials[i]
	}
	return p.fallback
}

// Materials returns the ten known-class materials in Classes order.
func (p *Palette) Materials() []Material {
	return p.materials[:]
}

// Fallback returns the white default material.
func (p *Palette) Fallback() Material {
	return p.fallback
}
