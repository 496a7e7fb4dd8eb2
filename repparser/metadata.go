// This file contains the metadata block parser.

package repparser

// parseMetadata parses the recorded-game metadata block: an optional AI
// blob (skipped by scanning for a 4096-byte run of zero bytes), then a
// fixed field layout. It returns the decoded fields plus num_players,
// which the players stage needs.
func parseMetadata(cur *hdrCursor, save float64) (speed float32, ownerID int16, numPlayers int8, cheats bool) {
	ai := cur.u32()
	if ai > 0 {
		offset := cur.tell()
		rest := cur.read(cur.len() - offset)
		end := indexOfZeroRun(rest, aiZeroRunLen)
		if end < 0 {
			panic(&AnchorNotFoundError{
				ParseError: ParseError{Stage: cur.stage, Offset: int64(offset), Message: "could not find ai end"},
				Anchor:     "ai-zero-run",
			})
		}
		cur.seekAbs(offset + uint32(end) + uint32(aiZeroRunLen))
		logger().Debug("metadata: ai end found", "pos", cur.tell())
	}

	cur.skip(24)
	speed = cur.f32()
	cur.skip(17)
	ownerID = cur.i16()
	numPlayers = cur.i8()
	cur.skip(1)
	cheatsRaw := cur.i8()
	cheats = cheatsRaw == 1

	if save < 61.5 {
		cur.skip(60)
	} else {
		cur.skip(uint32(24 + int(numPlayers)*4))
	}

	logger().Debug("metadata: done", "pos", cur.tell(), "speed", speed, "owner_id", ownerID, "num_players", numPlayers)

	return speed, ownerID, numPlayers, cheats
}

// indexOfZeroRun returns the offset of the first run of n consecutive zero
// bytes in b, or -1 if none exists.
func indexOfZeroRun(b []byte, n int) int {
	run := 0
	for i, c := range b {
		if c == 0 {
			run++
			if run == n {
				return i - n + 1
			}
		} else {
			run = 0
		}
	}
	return -1
}
