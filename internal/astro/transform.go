package astro

import "math"

// forward is the canonical facing direction. glTF is right-handed with +Y
// up and the viewer looking down -Z; the shared octagon faces +Z, so a
// billboard rotated in place and carried to forward presents its face back
// toward the sphere center.
var forward = [3]float64{0, 0, -1}

// StarTransform holds the quantized node transform for one star.
type StarTransform struct {
	Rotation    [4]float64 // unit quaternion (x,y,z,w), rounded to 2 decimals
	Scale       [3]float64 // uniform, rounded to 2 decimals
	Translation [3]float64 // point on the unit sphere, rounded to 3 decimals
}

// ComputeTransform places a star of the given magnitude at (raDeg, decDeg)
// on the unit sphere. Right ascension rotates about the up axis, declination
// about the right axis; the composed rotation both orients the billboard and
// carries the forward vector to the star's position, so one quaternion
// serves as rotation and translation source.
//
// Components are rounded to shrink the serialized scene (2 decimals for
// rotation and scale, 3 for translation). The rotation is deliberately not
// renormalized after rounding.
func ComputeTransform(raDeg, decDeg, mag float64) StarTransform {
	q := RotationY(raDeg).Mul(RotationX(decDeg))
	t := q.Rotate(forward)
	s := round2(Scale(mag))
	return StarTransform{
		Rotation:    [4]float64{round2(q.X), round2(q.Y), round2(q.Z), round2(q.W)},
		Scale:       [3]float64{s, s, s},
		Translation: [3]float64{round3(t[0]), round3(t[1]), round3(t[2])},
	}
}

// Scale maps apparent magnitude to billboard size: the linear size grows 4x
// for every 4 magnitudes of brightness, anchored at the naked-eye limit
// (magnitude 6) and calibrated to world units by 1/15.
func Scale(mag float64) float64 {
	return math.Pow(4, (6-mag)/4) / 15
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
