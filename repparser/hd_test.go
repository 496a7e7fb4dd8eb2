package repparser

import "testing"

// hdString encodes a little-endian i16 length, the 0x60 0x0a magic, then the
// raw bytes: the wire format readHDString expects.
func hdString(s string) []byte {
	b := []byte{byte(len(s)), byte(len(s) >> 8), 0x60, 0x0a}
	return append(b, s...)
}

// buildHDBuffer constructs a full HD block: the fixed 12-byte skip, a
// zero-length DLC list, the difficulty/map/skip-80 header, 8 player slots
// named from names (blank entries give blank slots, which parseHD drops),
// and the trailing lobby-name/mod/GUID fields.
func buildHDBuffer(names [8]string) []byte {
	var b []byte
	b = append(b, make([]byte, 12)...) // leading skip
	b = append(b, u32le(0)...)         // DLCCount = 0
	b = append(b, u32le(0)...)         // the post-DLC-list 4-byte skip
	b = append(b, u32le(7)...)         // DifficultyID
	b = append(b, u32le(9)...)         // MapID
	b = append(b, make([]byte, 80)...)

	for i := 0; i < 8; i++ {
		b = append(b, make([]byte, 4)...)      // leading per-slot skip
		b = append(b, u32le(uint32(100+i))...) // colorID
		b = append(b, make([]byte, 12)...)
		b = append(b, u32le(uint32(i))...)   // civID
		b = append(b, hdString("")...)       // unused string #1
		b = append(b, 0)                     // 1-byte skip
		b = append(b, hdString("")...)       // unused string #2
		b = append(b, hdString(names[i])...) // name
		b = append(b, make([]byte, 4)...)
		b = append(b, u64leBytes(uint64(1000+i))...) // profileID
		b = append(b, u32le(uint32(i))...)           // number
		b = append(b, make([]byte, 8)...)
	}

	b = append(b, make([]byte, 26)...)
	b = append(b, hdString("")...) // unused #1
	b = append(b, make([]byte, 8)...)
	b = append(b, hdString("")...) // unused #2
	b = append(b, make([]byte, 8)...)
	b = append(b, hdString("")...) // unused #3
	b = append(b, make([]byte, 8)...)
	b = append(b, make([]byte, 16)...) // GUID
	b = append(b, hdString("My Lobby")...)
	b = append(b, hdString("WK")...)
	b = append(b, make([]byte, 8)...)
	b = append(b, hdString("")...) // unused trailing string
	b = append(b, make([]byte, 4)...)
	return b
}

func u64leBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func TestParseHDNotHDReturnsNil(t *testing.T) {
	cur := newCursor("hd", nil)
	if hd := parseHD(cur, false, 20.0); hd != nil {
		t.Errorf("parseHD(isHD=false) = %+v, want nil", hd)
	}
}

func TestParseHDPreHDLayoutReturnsNil(t *testing.T) {
	cur := newCursor("hd", nil)
	if hd := parseHD(cur, true, 12.0); hd != nil {
		t.Errorf("parseHD(save=12.0) = %+v, want nil", hd)
	}
}

func TestParseHDDropsUnnamedSlots(t *testing.T) {
	var names [8]string
	names[0] = "Alice"
	names[3] = "Bob"

	buf := buildHDBuffer(names)
	cur := newCursor("hd", buf)

	hd := parseHD(cur, true, 20.0)
	if hd == nil {
		t.Fatal("parseHD returned nil, want a populated *rep.HDData")
	}
	if hd.DifficultyID != 7 || hd.MapID != 9 {
		t.Errorf("DifficultyID/MapID = %d/%d, want 7/9", hd.DifficultyID, hd.MapID)
	}
	if len(hd.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2 (blank-named slots dropped)", len(hd.Players))
	}
	if hd.Players[0].Name != "Alice" {
		t.Errorf("Players[0].Name = %q, want Alice", hd.Players[0].Name)
	}
	if hd.Players[1].Name != "Bob" {
		t.Errorf("Players[1].Name = %q, want Bob", hd.Players[1].Name)
	}
	if hd.Lobby != "My Lobby" {
		t.Errorf("Lobby = %q, want %q", hd.Lobby, "My Lobby")
	}
	if hd.Mod != "WK" {
		t.Errorf("Mod = %q, want WK", hd.Mod)
	}
}
