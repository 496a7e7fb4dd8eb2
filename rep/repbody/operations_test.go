package repbody

import (
	"encoding/binary"
	"testing"
)

func frame(num int32, block []byte) []byte {
	b := make([]byte, 5, 5+len(block))
	binary.LittleEndian.PutUint32(b[0:4], uint32(num))
	b[4] = byte(len(block))
	return append(b, block...)
}

func TestReadOperationsSingleFrame(t *testing.T) {
	data := frame(3, []byte{0x01, 0x7f, 0xde, 0xad})

	body, err := ReadOperations(data)
	if err != nil {
		t.Fatalf("ReadOperations: %v", err)
	}
	if len(body.Operations) != 1 {
		t.Fatalf("len(Operations) = %d, want 1", len(body.Operations))
	}
	op := body.Operations[0]
	if op.Frame != 3 || op.PlayerID != 1 || op.Type != 0x7f {
		t.Errorf("op = %+v, want Frame=3 PlayerID=1 Type=0x7f", op)
	}
	if string(op.Payload) != "\xde\xad" {
		t.Errorf("Payload = %x, want dead", op.Payload)
	}
}

func TestReadOperationsSkipsShortBlocks(t *testing.T) {
	data := append(frame(1, []byte{0x01}), frame(2, []byte{0x02, 0x03})...)

	body, err := ReadOperations(data)
	if err != nil {
		t.Fatalf("ReadOperations: %v", err)
	}
	if len(body.Operations) != 1 {
		t.Fatalf("len(Operations) = %d, want 1 (single-byte block skipped)", len(body.Operations))
	}
	if body.Operations[0].Frame != 2 {
		t.Errorf("surviving op Frame = %d, want 2", body.Operations[0].Frame)
	}
}

func TestReadOperationsTruncatedFrameHeader(t *testing.T) {
	_, err := ReadOperations([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for truncated frame header")
	}
}

func TestReadOperationsOverrunBlock(t *testing.T) {
	data := []byte{0, 0, 0, 0, 10} // claims a 10-byte block with none present
	_, err := ReadOperations(data)
	if err == nil {
		t.Fatal("expected error for a command block overrunning the buffer")
	}
}
