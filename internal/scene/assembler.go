// Package scene assembles parsed catalog records into a glTF document and
// serializes it as a binary GLB container.
package scene

import (
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/litescript/starfield/internal/astro"
	"github.com/litescript/starfield/internal/catalog"
	"github.com/litescript/starfield/internal/palette"
)

// octagonScale pre-shrinks the unit-radius fan once, in the shared
// geometry; per-star magnitude scaling multiplies on top of it.
const octagonScale = 0.001

// octagonSegments is the number of fan wedges.
const octagonSegments = 8

// StarExtras is the metadata block attached to each star node.
type StarExtras struct {
	Mag  float64 `json:"mag"`
	BSN  int     `json:"bsn"`
	Name string  `json:"name"`
}

// MaterialExtras tags each material with its spectral class letter.
type MaterialExtras struct {
	Cls string `json:"cls"`
}

// Assemble builds the starfield document: one shared octagon position
// accessor, one material per palette class, and, per record in catalog
// order, one triangle-fan mesh plus one node appended to the root scene.
// Records with a spectral class outside the palette get the white default
// material, appended once on first use.
func Assemble(records []catalog.StarRecord, pal *palette.Palette) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "starfield"

	posAccessor := modeler.WritePosition(doc, octagonVertices())

	for _, m := range pal.Materials() {
		doc.Materials = append(doc.Materials, material(m))
	}
	fallbackIndex := -1

	for _, rec := range records {
		matIdx := palette.ClassIndex(rec.SpectralClass)
		if matIdx < 0 {
			if fallbackIndex < 0 {
				fallbackIndex = len(doc.Materials)
				doc.Materials = append(doc.Materials, material(pal.Fallback()))
			}
			matIdx = fallbackIndex
		}

		tr := astro.ComputeTransform(rec.RADeg, rec.DecDeg, rec.Mag)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Primitives: []*gltf.Primitive{{
				Attributes: gltf.PrimitiveAttributes{gltf.POSITION: posAccessor},
				Material:   gltf.Index(matIdx),
				Mode:       gltf.PrimitiveTriangleFan,
			}},
		})

		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        rec.Name,
			Mesh:        gltf.Index(len(doc.Meshes) - 1),
			Rotation:    tr.Rotation,
			Scale:       tr.Scale,
			Translation: tr.Translation,
			Extras:      StarExtras{Mag: rec.Mag, BSN: rec.ID, Name: rec.Name},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc
}

// octagonVertices builds the shared fan: a center vertex plus nine ring
// vertices at 45 degree steps, the last repeating the first to close the
// fan. The octagon lies in the XY plane facing +Z.
func octagonVertices() [][3]float32 {
	verts := make([][3]float32, 0, octagonSegments+2)
	verts = append(verts, [3]float32{0, 0, 0})
	for i := 0; i <= octagonSegments; i++ {
		// i%octagonSegments keeps the closing vertex bit-identical to the
		// first ring vertex.
		a := 2 * math.Pi * float64(i%octagonSegments) / octagonSegments
		verts = append(verts, [3]float32{
			float32(math.Cos(a) * octagonScale),
			float32(math.Sin(a) * octagonScale),
			0,
		})
	}
	return verts
}

func material(m palette.Material) *gltf.Material {
	cls := ""
	name := "star-default"
	if m.Class != 0 {
		cls = string(m.Class)
		name = "star-" + cls
	}
	return &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{m.Color[0], m.Color[1], m.Color[2], 1},
			MetallicFactor:  gltf.Float(m.Metallic),
			RoughnessFactor: gltf.Float(m.Roughness),
		},
		EmissiveFactor: [3]float64{m.Color[0], m.Color[1], m.Color[2]},
		Extras:         MaterialExtras{Cls: cls},
	}
}
