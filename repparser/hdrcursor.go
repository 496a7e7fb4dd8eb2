// This file contains the cursor used to read the decompressed header buffer:
// a sequential byte-slice reader generalized with seek, a find-by-pattern
// primitive, and panic-on-truncation semantics so that parseProtected can
// convert any out-of-bounds read into a typed error.

package repparser

import (
	"encoding/binary"
	"math"
)

// hdrCursor reads sequentially (and occasionally by seek) through a
// byte slice. Every read that would run past the end of b panics with a
// *TruncatedError; parseProtected recovers it at the top of each Parse call.
type hdrCursor struct {
	stage string
	b     []byte
	pos   uint32
}

func newCursor(stage string, b []byte) *hdrCursor {
	return &hdrCursor{stage: stage, b: b}
}

func (c *hdrCursor) tell() uint32 { return c.pos }

func (c *hdrCursor) len() uint32 { return uint32(len(c.b)) }

func (c *hdrCursor) seekAbs(pos uint32) {
	if pos > uint32(len(c.b)) {
		c.fail(0, int(pos)-len(c.b))
	}
	c.pos = pos
}

func (c *hdrCursor) seekRel(delta int64) {
	np := int64(c.pos) + delta
	if np < 0 || np > int64(len(c.b)) {
		c.fail(0, 0)
	}
	c.pos = uint32(np)
}

func (c *hdrCursor) fail(requested, remaining int) {
	panic(&TruncatedError{
		ParseError: ParseError{Stage: c.stage, Offset: int64(c.pos), Message: "read past end of buffer"},
		Requested:  requested,
		Remaining:  remaining,
	})
}

// read returns the next n bytes and advances the cursor.
func (c *hdrCursor) read(n uint32) []byte {
	if uint64(c.pos)+uint64(n) > uint64(len(c.b)) {
		c.fail(int(n), len(c.b)-int(c.pos))
	}
	r := c.b[c.pos : c.pos+n]
	c.pos += n
	return r
}

// skip advances the cursor by n bytes without returning them (pad bytes).
func (c *hdrCursor) skip(n uint32) { c.read(n) }

func (c *hdrCursor) u8() uint8   { return c.read(1)[0] }
func (c *hdrCursor) i8() int8    { return int8(c.read(1)[0]) }
func (c *hdrCursor) u16() uint16 { return binary.LittleEndian.Uint16(c.read(2)) }
func (c *hdrCursor) i16() int16  { return int16(c.u16()) }
func (c *hdrCursor) u32() uint32 { return binary.LittleEndian.Uint32(c.read(4)) }
func (c *hdrCursor) i32() int32  { return int32(c.u32()) }
func (c *hdrCursor) u64() uint64 { return binary.LittleEndian.Uint64(c.read(8)) }
func (c *hdrCursor) i64() int64  { return int64(c.u64()) }
func (c *hdrCursor) f32() float32 {
	return math.Float32frombits(c.u32())
}
func (c *hdrCursor) f64() float64 {
	return math.Float64frombits(c.u64())
}

// str returns the next n bytes as a string (no length prefix, no magic).
func (c *hdrCursor) str(n uint32) string {
	return string(c.read(n))
}

// peek returns the next n bytes without advancing the cursor.
func (c *hdrCursor) peek(n uint32) []byte {
	pos := c.pos
	defer func() { c.pos = pos }()
	return c.read(n)
}

const notFound = ^uint32(0)

// find searches for pattern in [start, end) and returns the absolute offset
// of the first match, or notFound. end == 0 means "to the end of the buffer".
func (c *hdrCursor) find(pattern []byte, start, end uint32) uint32 {
	if end == 0 || end > uint32(len(c.b)) {
		end = uint32(len(c.b))
	}
	if len(pattern) == 0 || start >= end {
		return notFound
	}
	hay := c.b[start:end]
	idx := indexOf(hay, pattern)
	if idx < 0 {
		return notFound
	}
	return start + uint32(idx)
}

// findPattern searches for the first match of a *pattern (hdrpattern.go) in
// [start, end) and returns its absolute start offset, or notFound.
func (c *hdrCursor) findPattern(p *pattern, start, end uint32) uint32 {
	if end == 0 || end > uint32(len(c.b)) {
		end = uint32(len(c.b))
	}
	for i := start; int(i)+p.length() <= int(end); i++ {
		if p.matchAt(c.b, i) {
			return i
		}
	}
	return notFound
}

func indexOf(hay, needle []byte) int {
	n, m := len(hay), len(needle)
	if m == 0 || m > n {
		return -1
	}
outer:
	for i := 0; i+m <= n; i++ {
		for j := 0; j < m; j++ {
			if hay[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

func (c *hdrCursor) debugf(format string, args ...any) {
	logger().Debug(c.stage+": "+format, args...)
}
