package catalog

import (
	"math"
	"strconv"
	"strings"
)

// BSC5 fixed column layout, 0-based byte offsets within a line.
// See the catalog's ReadMe: bytes 1-4 HR, 5-14 name, 76-90 RA/Dec (J2000),
// 103-107 Vmag, 128-147 spectral type.
const (
	colID        = 0
	colIDEnd     = 4
	colName1     = 4
	colName1End  = 7
	colName2     = 7
	colName2End  = 14
	colRAHour    = 75
	colRAHourEnd = 77
	colRAMin     = 77
	colRAMinEnd  = 79
	colRASec     = 79
	colRASecEnd  = 83
	colDecSign   = 83
	colDecDeg    = 84
	colDecDegEnd = 86
	colDecMin    = 86
	colDecMinEnd = 88
	colDecSec    = 88
	colDecSecEnd = 90
	colMag       = 102
	colMagEnd    = 107
	colSpType    = 127
	colSpTypeEnd = 147
)

// lineWidth is the width a line is padded to before slicing. Catalog lines
// with trailing blank fields arrive shorter than the nominal record length.
const lineWidth = colSpTypeEnd

// Parse converts raw fixed-width catalog text into star records, one per
// line, preserving input order. It also reports how many non-blank lines
// were skipped.
//
// A line is skipped when its HR number, RA, Dec, or magnitude does not
// parse to a finite number; the catalog contains a handful of novae and
// other non-stellar entries with blank positions, and those are expected.
// The spectral class is not validated here: unknown letters pass through
// and resolve to the default material at palette lookup.
func Parse(raw []byte) ([]StarRecord, int) {
	lines := strings.Split(string(raw), "\n")
	records := make([]StarRecord, 0, len(lines))
	skipped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped
}

func parseLine(line string) (StarRecord, bool) {
	if len(line) < lineWidth {
		line += strings.Repeat(" ", lineWidth-len(line))
	}

	id, err := strconv.Atoi(strings.TrimSpace(line[colID:colIDEnd]))
	if err != nil || id <= 0 {
		return StarRecord{}, false
	}

	raH, ok1 := parseFinite(line[colRAHour:colRAHourEnd])
	raM, ok2 := parseFinite(line[colRAMin:colRAMinEnd])
	raS, ok3 := parseFinite(line[colRASec:colRASecEnd])
	decD, ok4 := parseFinite(line[colDecDeg:colDecDegEnd])
	decM, ok5 := parseFinite(line[colDecMin:colDecMinEnd])
	decS, ok6 := parseFinite(line[colDecSec:colDecSecEnd])
	mag, ok7 := parseFinite(line[colMag:colMagEnd])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
		return StarRecord{}, false
	}

	sign := 1.0
	if line[colDecSign] == '-' {
		sign = -1
	}

	rec := StarRecord{
		ID:     id,
		RADeg:  (raH + raM/60 + raS/3600) / 24 * 360,
		DecDeg: sign * (decD + decM/60 + decS/3600),
		Mag:    mag,
		Name:   joinName(line[colName1:colName1End], line[colName2:colName2End]),
	}
	if sp := strings.TrimSpace(line[colSpType:colSpTypeEnd]); sp != "" {
		rec.SpectralClass = upperByte(sp[0])
	}
	return rec, true
}

// parseFinite parses a trimmed field as a float, rejecting NaN and Inf.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// joinName merges the two name sub-fields (Flamsteed number, Bayer letter +
// constellation) with a single space, falling back to whichever is present.
func joinName(a, b string) string {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
