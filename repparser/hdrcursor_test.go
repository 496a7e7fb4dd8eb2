package repparser

import "testing"

func TestCursorReadPrimitives(t *testing.T) {
	b := []byte{
		0x01,                   // u8/i8
		0x02, 0x00,             // u16/i16
		0x03, 0x00, 0x00, 0x00, // u32/i32
		0x00, 0x00, 0x80, 0x3f, // f32 == 1.0
	}
	cur := newCursor("test", b)

	if got := cur.u8(); got != 1 {
		t.Errorf("u8() = %d, want 1", got)
	}
	if got := cur.u16(); got != 2 {
		t.Errorf("u16() = %d, want 2", got)
	}
	if got := cur.u32(); got != 3 {
		t.Errorf("u32() = %d, want 3", got)
	}
	if got := cur.f32(); got != 1.0 {
		t.Errorf("f32() = %v, want 1.0", got)
	}
	if cur.tell() != cur.len() {
		t.Errorf("tell() = %d, want %d (fully consumed)", cur.tell(), cur.len())
	}
}

func TestCursorReadPastEndPanics(t *testing.T) {
	cur := newCursor("test", []byte{0x01, 0x02})
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic reading past end of buffer")
		}
		if _, ok := rec.(*TruncatedError); !ok {
			t.Fatalf("expected *TruncatedError, got %T", rec)
		}
	}()
	cur.read(10)
}

func TestCursorSeek(t *testing.T) {
	cur := newCursor("test", []byte{1, 2, 3, 4, 5})
	cur.seekAbs(3)
	if got := cur.u8(); got != 4 {
		t.Errorf("after seekAbs(3), u8() = %d, want 4", got)
	}
	cur.seekRel(-2)
	if got := cur.u8(); got != 3 {
		t.Errorf("after seekRel(-2), u8() = %d, want 3", got)
	}
}

func TestCursorSeekOutOfBoundsPanics(t *testing.T) {
	cur := newCursor("test", []byte{1, 2, 3})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic seeking past end of buffer")
		}
	}()
	cur.seekAbs(10)
}

func TestCursorFind(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0xde, 0xad}
	cur := newCursor("test", b)

	if got := cur.find([]byte{0xbe, 0xef}, 0, 0); got != 2 {
		t.Errorf("find(beef) = %d, want 2", got)
	}
	if got := cur.find([]byte{0xde, 0xad}, 3, 0); got != 5 {
		t.Errorf("find(dead, start=3) = %d, want 5", got)
	}
	if got := cur.find([]byte{0xff}, 0, 0); got != notFound {
		t.Errorf("find(ff) = %d, want notFound", got)
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	cur := newCursor("test", []byte{1, 2, 3})
	peeked := cur.peek(2)
	if len(peeked) != 2 || peeked[0] != 1 || peeked[1] != 2 {
		t.Fatalf("peek(2) = %v, want [1 2]", peeked)
	}
	if cur.tell() != 0 {
		t.Fatalf("peek must not advance cursor, tell() = %d", cur.tell())
	}
}

func TestCursorTrySliceAt(t *testing.T) {
	cur := newCursor("test", []byte{1, 2, 3, 4, 5})

	if got := cur.trySliceAt(3, 2); len(got) != 2 || got[0] != 4 || got[1] != 5 {
		t.Errorf("trySliceAt(3,2) = %v, want [4 5]", got)
	}
	if got := cur.trySliceAt(4, 5); len(got) != 1 || got[0] != 5 {
		t.Errorf("trySliceAt(4,5) (truncated) = %v, want [5]", got)
	}
	if got := cur.trySliceAt(10, 2); got != nil {
		t.Errorf("trySliceAt out of range = %v, want nil", got)
	}
}

func TestCursorSliceAtPanicsOutOfRange(t *testing.T) {
	cur := newCursor("test", []byte{1, 2, 3})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from sliceAt past end of buffer")
		}
	}()
	cur.sliceAt(1, 10)
}
