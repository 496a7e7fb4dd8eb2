package repparser

import "testing"

func TestIndexOfZeroRun(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		n    int
		want int
	}{
		{"found at start", []byte{0, 0, 0, 1, 2}, 3, 0},
		{"found in middle", []byte{1, 2, 0, 0, 0, 9}, 3, 2},
		{"run too short", []byte{1, 0, 0, 1}, 3, -1},
		{"no zeros", []byte{1, 2, 3}, 2, -1},
		{"run spans to end", []byte{1, 0, 0, 0}, 3, 1},
	}
	for _, c := range cases {
		if got := indexOfZeroRun(c.b, c.n); got != c.want {
			t.Errorf("%s: indexOfZeroRun(%v, %d) = %d, want %d", c.name, c.b, c.n, got, c.want)
		}
	}
}

func TestParseMetadataFixedLayout(t *testing.T) {
	var b []byte
	b = append(b, 0, 0, 0, 0) // ai == 0, no AI blob to skip
	b = append(b, make([]byte, 24)...)
	b = append(b, f32le(2.0)...) // speed
	b = append(b, make([]byte, 17)...)
	b = append(b, i16le(3)...) // owner_id
	b = append(b, 4)           // num_players
	b = append(b, 0)           // pad
	b = append(b, 1)           // cheats
	b = append(b, make([]byte, 60)...)

	cur := newCursor("test", b)
	speed, ownerID, numPlayers, cheats := parseMetadata(cur, 20.0)

	if speed != 2.0 {
		t.Errorf("speed = %v, want 2.0", speed)
	}
	if ownerID != 3 {
		t.Errorf("ownerID = %v, want 3", ownerID)
	}
	if numPlayers != 4 {
		t.Errorf("numPlayers = %v, want 4", numPlayers)
	}
	if !cheats {
		t.Error("cheats = false, want true")
	}
}
