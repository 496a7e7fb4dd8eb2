// Package repbody provides a minimal, deliberately non-exhaustive reader
// for the recorded-game body (operation) stream.
//
// The header parser in package repparser is the core of this module; the
// body stream is explicitly out of scope for it (see the module's top-level
// documentation). This package exists only so the parse-body CLI command
// has something real to call: it recognizes the frame/command-block wrapper
// every operation is embedded in without decoding game-specific opcodes,
// which remain undefined here by design.
package repbody

import (
	"encoding/binary"
	"fmt"
)

// Operation is one opaque player action recovered from the body stream.
type Operation struct {
	Frame    int32
	PlayerID uint8
	Type     uint8
	Payload  []byte
}

// Body is the decoded operation stream of a recorded game.
type Body struct {
	Operations []Operation
}

// ReadOperations walks the body byte stream frame by frame, splitting it
// into Operation records without interpreting their payloads.
//
// Layout recognized per frame: a little-endian frame counter, a one-byte
// command-block size, then that many bytes holding zero or more
// {player_id, op_type, ...} records. Since
// per-opcode payload lengths are not decoded, a whole command block is
// attributed to a single Operation; callers needing finer granularity must
// supply their own opcode table.
func ReadOperations(data []byte) (*Body, error) {
	body := &Body{}
	pos := uint32(0)
	size := uint32(len(data))

	for pos < size {
		if pos+5 > size {
			return nil, fmt.Errorf("repbody: truncated frame header at offset %d", pos)
		}
		frame := int32(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4

		blockSize := uint32(data[pos])
		pos++

		if pos+blockSize > size {
			return nil, fmt.Errorf("repbody: command block at offset %d overruns buffer (size %d)", pos, blockSize)
		}
		block := data[pos : pos+blockSize]
		pos += blockSize

		if len(block) < 2 {
			continue
		}
		body.Operations = append(body.Operations, Operation{
			Frame:    frame,
			PlayerID: block[0],
			Type:     block[1],
			Payload:  block[2:],
		})
	}

	return body, nil
}
