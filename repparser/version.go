// This file contains the version detector.

package repparser

import (
	"encoding/binary"
	"strings"

	"github.com/icza/mgzparse/rep/repcore"
)

// detectVersion reads log_version from the raw (undecompressed) buffer
// immediately following the compressed header blob, and game_tag/save_raw
// from the decompressed header cursor, classifying the result into a
// repcore.Version.
func detectVersion(raw []byte, headerLength uint32, cur *hdrCursor) (*repcore.Version, string, float64, uint32, error) {
	if uint64(headerLength)+4 > uint64(len(raw)) {
		return nil, "", 0, 0, &TruncatedError{
			ParseError: ParseError{Stage: "version", Offset: int64(headerLength), Message: "log_version past end of file"},
			Requested:  4,
			Remaining:  len(raw) - int(headerLength),
		}
	}
	logVersion := binary.LittleEndian.Uint32(raw[headerLength : headerLength+4])

	gameTag := strings.TrimRight(cur.str(7), "\x00")
	cur.skip(1) // pad
	saveRaw := float64(cur.f32())

	save := saveRaw
	if saveRaw == -1 {
		s := cur.u32()
		if s == 37 {
			save = 37.0
		} else {
			save = float64(s) / 65536.0
		}
	}
	save = roundSave(save)

	version := repcore.ClassifyVersion(gameTag, save)

	logger().Debug("version: detected", "game_tag", gameTag, "save", save, "log_version", logVersion, "version", version)

	return version, gameTag, save, logVersion, nil
}

// roundSave rounds a save_version float to 2 decimal places; every
// threshold comparison in this parser assumes this has already happened.
func roundSave(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
