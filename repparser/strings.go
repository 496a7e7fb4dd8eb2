// This file contains the DE/HD magic-prefixed string readers, the DE
// string-block accumulator, and a legacy-codepage
// fallback for the one player-name field old UserPatch 1.5 saves still
// store outside of a declared encoding.

package repparser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// readDEString reads a DE-string: the 2-byte magic 0x60 0x0a, then a
// little-endian i16 length, then that many bytes of UTF-8.
func readDEString(cur *hdrCursor) string {
	magic := cur.read(2)
	if !bytesEqual(magic, deStringMagic) {
		panic(&MagicMismatchError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(cur.tell()) - 2, Message: "de_string magic mismatch"},
			Expected:   deStringMagic,
			Actual:     append([]byte(nil), magic...),
		})
	}
	n := cur.i16()
	return cur.str(uint32(n))
}

// readHDString reads an HD-string: a little-endian i16 length, then the
// 2-byte magic 0x60 0x0a, then that many bytes of UTF-8.
func readHDString(cur *hdrCursor) string {
	n := cur.i16()
	magic := cur.read(2)
	if !bytesEqual(magic, deStringMagic) {
		panic(&MagicMismatchError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(cur.tell()) - 2, Message: "hd_string magic mismatch"},
			Expected:   deStringMagic,
			Actual:     append([]byte(nil), magic...),
		})
	}
	return cur.str(uint32(n))
}

// readIntPrefixedString reads a plain 4-byte-length-prefixed string, used
// in the scenario block (aoc_string/int_prefixed_string in the source).
func readIntPrefixedString(cur *hdrCursor) string {
	n := cur.u32()
	return cur.str(n)
}

// readShortPrefixedString reads a 2-byte-length-prefixed string with no
// magic (aoc_string's other use site in the scenario block).
func readShortPrefixedString(cur *hdrCursor) string {
	n := cur.i16()
	return cur.str(uint32(n))
}

// stringBlock reads a DE string block: repeatedly peeking a u32 "crc"; a
// value strictly between 0 and 255 terminates the block (that u32 is
// consumed but contributes no string); any other value is followed by one
// DE-string, appended to the result.
func stringBlock(cur *hdrCursor) []string {
	var strings []string
	for {
		crc := cur.u32()
		if crc > 0 && crc < 255 {
			return strings
		}
		strings = append(strings, readDEString(cur))
	}
}

// sanitizeName decodes a raw player-name field read from the fixed-layout
// player table. Definitive/HD Edition saves always write this field as
// UTF-8, but UserPatch 1.5 saves predate that convention and store it in
// the player's Windows ANSI codepage, most commonly EUC-KR for the
// format's large Korean community. A name that doesn't decode as valid
// UTF-8 is re-decoded as EUC-KR on a best-effort basis; anything still
// left over after that is dropped rather than surfaced as U+FFFD.
func sanitizeName(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	s := strings.ReplaceAll(string(decoded), string(utf8.RuneError), "")
	return strings.ReplaceAll(s, "\x00", "")
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
