// This file contains the header decompressor.

package repparser

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"io"
)

// Decompressed holds the result of stripping and inflating the header block.
type Decompressed struct {
	// HeaderLength is the raw little-endian u32 read at offset 0.
	HeaderLength uint32

	// ChapterAddress is the raw little-endian u32 read at offset 4. It is
	// not consumed by the header parser; the extract CLI collaborator uses
	// it to locate the body stream.
	ChapterAddress uint32

	// Header is the inflated header buffer, positioned at offset 0.
	Header []byte
}

// decompressHeader reads the two little-endian u32 prefix fields and
// inflates bytes[8:headerLength] as raw DEFLATE (no zlib/gzip wrapper).
func decompressHeader(raw []byte) (*Decompressed, error) {
	if len(raw) < 8 {
		return nil, ErrNotReplayFile
	}
	headerLength := binary.LittleEndian.Uint32(raw[0:4])
	chapterAddress := binary.LittleEndian.Uint32(raw[4:8])

	if uint64(headerLength) > uint64(len(raw)) {
		return nil, &TruncatedError{
			ParseError: ParseError{Stage: "decompress", Offset: 0, Message: "header_length exceeds file size"},
			Requested:  int(headerLength),
			Remaining:  len(raw),
		}
	}

	compressed := raw[8:headerLength]
	fr := flate.NewReader(bytes.NewReader(compressed))
	defer fr.Close()

	header, err := io.ReadAll(fr)
	if err != nil {
		return nil, &DecompressionError{
			ParseError: ParseError{Stage: "decompress", Offset: 8, Message: "raw deflate inflate failed"},
			Cause:      err,
		}
	}

	logger().Debug("decompress: done", "header_length", headerLength, "chapter_address", chapterAddress, "inflated", len(header))

	return &Decompressed{
		HeaderLength:   headerLength,
		ChapterAddress: chapterAddress,
		Header:         header,
	}, nil
}
