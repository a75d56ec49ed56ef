package catalog

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// buildLine lays fields out at the BSC5 byte offsets. Empty strings leave
// the field blank, matching how the catalog encodes missing values.
func buildLine(id, name1, name2, raH, raM, raS, sign, decD, decM, decS, mag, spType string) string {
	return fmt.Sprintf("%4s%3s%7s%61s%2s%2s%4s%1s%2s%2s%2s%12s%5s%20s%-20s",
		id, name1, name2, "",
		raH, raM, raS,
		sign, decD, decM, decS,
		"", mag, "", spType)
}

// siriusLine reproduces the catalog entry for Sirius with HR number 1.
func siriusLine() string {
	return buildLine("1", "", "Alp CMa", "06", "45", "08.9", "-", "16", "42", "58", "-1.46", "A0mA1 Va")
}

func TestParse_Sirius(t *testing.T) {
	records, skipped := Parse([]byte(siriusLine()))
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.ID != 1 {
		t.Errorf("ID = %d, want 1", rec.ID)
	}
	if math.Abs(rec.RADeg-101.287) > 0.01 {
		t.Errorf("RADeg = %v, want ~101.287", rec.RADeg)
	}
	if math.Abs(rec.DecDeg-(-16.716)) > 0.01 {
		t.Errorf("DecDeg = %v, want ~-16.716", rec.DecDeg)
	}
	if rec.Mag != -1.46 {
		t.Errorf("Mag = %v, want -1.46", rec.Mag)
	}
	if rec.SpectralClass != 'A' {
		t.Errorf("SpectralClass = %c, want A", rec.SpectralClass)
	}
	if rec.Name != "Alp CMa" {
		t.Errorf("Name = %q, want \"Alp CMa\"", rec.Name)
	}
}

func TestParse_OrderPreservedAndMalformedSkipped(t *testing.T) {
	lines := []string{
		buildLine("1", "", "Alp CMa", "06", "45", "08.9", "-", "16", "42", "58", "-1.46", "A1Vm"),
		buildLine("92", "", "", "00", "21", "46.4", "+", "44", "51", "22", "", "K0"), // nova: blank magnitude
		buildLine("424", "1", "Alp UMi", "02", "31", "49.0", "+", "89", "15", "51", "2.02", "F7:Ib-IIv"),
		buildLine("2326", "", "Alp Car", "06", "23", "57.1", "-", "52", "41", "44", "-0.72", "F0II"),
	}
	records, skipped := Parse([]byte(strings.Join(lines, "\n")))

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	wantIDs := []int{1, 424, 2326}
	for i, want := range wantIDs {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %d, want %d", i, records[i].ID, want)
		}
	}
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	raw := "\n" + siriusLine() + "\n\n"
	records, skipped := Parse([]byte(raw))
	if len(records) != 1 || skipped != 0 {
		t.Errorf("got %d records, %d skipped; want 1, 0", len(records), skipped)
	}
}

func TestParse_NameSubfields(t *testing.T) {
	tests := []struct {
		name string
		n1   string
		n2   string
		want string
	}{
		{"both present", "9", "Alp CMa", "9 Alp CMa"},
		{"first only", "33", "", "33"},
		{"second only", "", "Alp CMa", "Alp CMa"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := buildLine("10", tt.n1, tt.n2, "01", "02", "03.0", "+", "10", "20", "30", "5.00", "G2V")
			records, _ := Parse([]byte(line))
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Name != tt.want {
				t.Errorf("Name = %q, want %q", records[0].Name, tt.want)
			}
		})
	}
}

func TestParse_ShortLinePadded(t *testing.T) {
	// Truncate right after the magnitude field: spectral type absent.
	line := siriusLine()[:colMagEnd]
	records, skipped := Parse([]byte(line))
	if skipped != 0 || len(records) != 1 {
		t.Fatalf("got %d records, %d skipped; want 1, 0", len(records), skipped)
	}
	if records[0].SpectralClass != 0 {
		t.Errorf("SpectralClass = %v, want 0 for blank spectral type", records[0].SpectralClass)
	}
}

func TestParse_UnknownSpectralClassPassesThrough(t *testing.T) {
	line := buildLine("77", "", "", "12", "00", "00.0", "+", "05", "00", "00", "4.50", "pec")
	records, _ := Parse([]byte(line))
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	// Parse upper-cases but does not validate; the palette resolves it later.
	if records[0].SpectralClass != 'P' {
		t.Errorf("SpectralClass = %c, want P", records[0].SpectralClass)
	}
}

func TestParse_DecSign(t *testing.T) {
	tests := []struct {
		sign string
		want float64
	}{
		{"-", -30.5},
		{"+", 30.5},
		{" ", 30.5}, // anything but '-' is positive
	}

	for _, tt := range tests {
		line := buildLine("5", "", "", "00", "00", "00.0", tt.sign, "30", "30", "00", "3.00", "B5")
		records, _ := Parse([]byte(line))
		if len(records) != 1 {
			t.Fatalf("sign %q: got %d records, want 1", tt.sign, len(records))
		}
		if math.Abs(records[0].DecDeg-tt.want) > 0.001 {
			t.Errorf("sign %q: DecDeg = %v, want %v", tt.sign, records[0].DecDeg, tt.want)
		}
	}
}

func TestFilterByMagnitude(t *testing.T) {
	records := []StarRecord{
		{ID: 1, Mag: -1.46},
		{ID: 2, Mag: 4.0},
		{ID: 3, Mag: 6.0},
		{ID: 4, Mag: 6.5},
	}
	got := FilterByMagnitude(records, 6.0)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, want)
		}
	}
}
