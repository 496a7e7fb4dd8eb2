package repparser

import "testing"

func TestPatternLiteralMatch(t *testing.T) {
	p := &pattern{segments: []segment{lit(0x01, 0x02, 0x03)}}
	b := []byte{0x00, 0x01, 0x02, 0x03, 0x00}

	if !p.matchAt(b, 1) {
		t.Error("expected literal match at offset 1")
	}
	if p.matchAt(b, 0) {
		t.Error("expected no match at offset 0")
	}
	if got, want := p.length(), 3; got != want {
		t.Errorf("length() = %d, want %d", got, want)
	}
}

func TestPatternWildcard(t *testing.T) {
	// lit(0xff) any(1) lit(0x0b) should match any byte in the middle slot.
	p := &pattern{segments: []segment{lit(0xff), any(1), lit(0x0b)}}

	for _, middle := range []byte{0x00, 0x42, 0xff} {
		b := []byte{0xff, middle, 0x0b}
		if !p.matchAt(b, 0) {
			t.Errorf("expected wildcard match with middle byte 0x%02x", middle)
		}
	}
}

func TestPatternOneOf(t *testing.T) {
	p := &pattern{segments: []segment{oneOf(0x0a, 0x1e, 0x46)}}

	if !p.matchAt([]byte{0x1e}, 0) {
		t.Error("expected match for a member of the oneOf set")
	}
	if p.matchAt([]byte{0x99}, 0) {
		t.Error("expected no match for a byte outside the oneOf set")
	}
}

func TestPatternExclude(t *testing.T) {
	forbidZero := func(w []byte) bool { return w[0] == 0 && w[1] == 0 }
	p := &pattern{segments: []segment{exclude(2, forbidZero)}}

	if p.matchAt([]byte{0x00, 0x00}, 0) {
		t.Error("expected exclude() to reject the forbidden window")
	}
	if !p.matchAt([]byte{0x00, 0x01}, 0) {
		t.Error("expected exclude() to accept a non-forbidden window")
	}
}

func TestFindPatternIn(t *testing.T) {
	p := &pattern{segments: []segment{lit(0xca, 0xfe)}}
	b := []byte{0x00, 0x00, 0xca, 0xfe, 0x00}

	if got := findPatternIn(b, p); got != 2 {
		t.Errorf("findPatternIn = %d, want 2", got)
	}
	if got := findPatternIn([]byte{0x01}, p); got != -1 {
		t.Errorf("findPatternIn (no match) = %d, want -1", got)
	}
}

func TestPlayerEndPatternMatchesWildcardByte(t *testing.T) {
	pe := playerEndPattern()
	zeros := make([]byte, 16)
	for _, wildcard := range []byte{0x00, 0x7f, 0xff} {
		b := append([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, wildcard}, zeros...)
		b = append(b, 0x0b)
		if !pe.matchAt(b, 0) {
			t.Errorf("expected player-end pattern to match with wildcard byte 0x%02x", wildcard)
		}
	}
}
