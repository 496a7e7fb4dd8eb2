// This file contains the byte-pattern primitive used for anchor search and
// the per-player object fingerprint. A pattern is a sequence of fixed-width
// segments; each segment is a predicate over its own window of bytes, which
// is enough to express literal sequences, alternation over a small set of
// literal bytes, "any byte" wildcards, and fixed-window negative lookahead
// without a general backtracking engine.

package repparser

import "bytes"

type segment struct {
	width   int
	matcher func(window []byte) bool
}

type pattern struct {
	segments []segment
}

func (p *pattern) length() int {
	n := 0
	for _, s := range p.segments {
		n += s.width
	}
	return n
}

func (p *pattern) matchAt(b []byte, pos uint32) bool {
	off := pos
	for _, s := range p.segments {
		w := uint32(s.width)
		if !s.matcher(b[off : off+w]) {
			return false
		}
		off += w
	}
	return true
}

// lit matches a literal byte sequence exactly.
func lit(bs ...byte) segment {
	want := append([]byte(nil), bs...)
	return segment{width: len(want), matcher: func(w []byte) bool { return bytes.Equal(w, want) }}
}

// any matches n arbitrary bytes.
func any(n int) segment {
	return segment{width: n, matcher: func([]byte) bool { return true }}
}

// oneOf matches a single byte against a small alternation set.
func oneOf(bs ...byte) segment {
	set := append([]byte(nil), bs...)
	return segment{width: 1, matcher: func(w []byte) bool {
		for _, b := range set {
			if w[0] == b {
				return true
			}
		}
		return false
	}}
}

// exclude matches a fixed-width window of arbitrary bytes, as long as it
// does not satisfy forbid (the fixed-window negative lookahead primitive).
func exclude(width int, forbid func(window []byte) bool) segment {
	return segment{width: width, matcher: func(w []byte) bool { return !forbid(w) }}
}
