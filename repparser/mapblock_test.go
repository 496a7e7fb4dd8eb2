package repparser

import "testing"

// buildLegacyMapBuffer constructs the minimal non-DE/HD map block for a 2x1
// tile grid with no zones, no post-tile data and no restore-time padding.
func buildLegacyMapBuffer(sizeX, sizeY uint32) []byte {
	var b []byte
	b = append(b, u32le(sizeX)...)
	b = append(b, u32le(sizeY)...)
	b = append(b, u32le(0)...) // zoneNum
	b = append(b, 1)           // allVisible
	b = append(b, 0)           // padding byte after allVisible

	tileNum := sizeX * sizeY
	for i := uint32(0); i < tileNum; i++ {
		// tileLegacy layout: '<xbbx' -> pad, terrain, elevation, pad
		b = append(b, 0, byte(i+1), byte(10+i), 0)
	}

	b = append(b, u32le(0)...)   // numData
	b = append(b, u32le(0)...)   // the unconditional 4-byte skip after numData
	b = append(b, u32le(0)...)   // x2
	b = append(b, u32le(0)...)   // y2
	b = append(b, u32le(123)...) // restoreTime
	return b
}

func TestParseMapLegacy(t *testing.T) {
	buf := buildLegacyMapBuffer(2, 1)
	cur := newCursor("map", buf)

	m := parseMap(cur, false, false, 1.0)

	if m.Dimension != 2 {
		t.Errorf("Dimension = %d, want 2", m.Dimension)
	}
	if !m.AllVisible {
		t.Error("AllVisible = false, want true")
	}
	if m.RestoreTime != 123 {
		t.Errorf("RestoreTime = %d, want 123", m.RestoreTime)
	}
	if len(m.Tiles) != 2 {
		t.Fatalf("len(Tiles) = %d, want 2", len(m.Tiles))
	}
	if m.Tiles[0].Terrain != 1 || m.Tiles[0].Elevation != 10 {
		t.Errorf("Tiles[0] = %+v, want Terrain=1 Elevation=10", m.Tiles[0])
	}
	if m.Tiles[1].Terrain != 2 || m.Tiles[1].Elevation != 11 {
		t.Errorf("Tiles[1] = %+v, want Terrain=2 Elevation=11", m.Tiles[1])
	}
}

func TestParseMapTruncatedTileGridPanics(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected a panic for a map block truncated mid tile-grid")
		}
		if _, ok := rec.(*TruncatedError); !ok {
			t.Fatalf("expected *TruncatedError, got %T (%v)", rec, rec)
		}
	}()

	buf := buildLegacyMapBuffer(2, 1)
	// Header (14 bytes) plus a single tile (4 bytes): the second tile read
	// of the two the grid promises is missing entirely.
	cur := newCursor("map", buf[:18])
	parseMap(cur, false, false, 1.0)
}
