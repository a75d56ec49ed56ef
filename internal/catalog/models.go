// Package catalog provides types and functions for working with the Yale
// Bright Star Catalog (BSC5) fixed-width format.
package catalog

// StarRecord is one parsed catalog entry.
type StarRecord struct {
	ID            int     // HR (Harvard Revised) number, catalog-unique
	RADeg         float64 // Right Ascension in degrees, J2000 (0-360)
	DecDeg        float64 // Declination in degrees, J2000 (-90 to +90)
	Mag           float64 // Apparent visual magnitude (lower = brighter)
	SpectralClass byte    // First letter of the spectral type, upper-cased; 0 if blank
	Name          string  // Display name (Flamsteed/Bayer designation), possibly empty
}

// FilterByMagnitude returns the records at or brighter than limit,
// preserving order. Magnitude grows toward fainter stars, so a limit of 6.0
// keeps roughly the naked-eye sky.
func FilterByMagnitude(records []StarRecord, limit float64) []StarRecord {
	out := make([]StarRecord, 0, len(records))
	for _, rec := range records {
		if rec.Mag <= limit {
			out = append(out, rec)
		}
	}
	return out
}
