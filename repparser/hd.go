// This file contains the HD-Edition block parser.

package repparser

import "github.com/icza/mgzparse/rep"

// parseHD parses the HD-only header block. It returns nil when the version
// isn't HD, or the save version predates HD's layout for this block.
func parseHD(cur *hdrCursor, isHD bool, save float64) *rep.HDData {
	if !isHD || save <= 12.34 {
		return nil
	}
	hd := &rep.HDData{}

	cur.skip(12)
	hd.DLCCount = cur.u32()
	cur.skip(hd.DLCCount * 4)
	cur.skip(4)
	hd.DifficultyID = cur.u32()
	hd.MapID = cur.u32()
	cur.skip(80)

	for i := 0; i < 8; i++ {
		cur.skip(4)
		colorID := cur.i32()
		cur.skip(12)
		civID := cur.u32()
		readHDString(cur)
		cur.skip(1)
		readHDString(cur)
		name := readHDString(cur)
		cur.skip(4)
		profileID := cur.u64()
		number := cur.i32()
		cur.skip(8)

		if name != "" {
			hd.Players = append(hd.Players, &rep.HDPlayer{
				Number:         number,
				ColorID:        colorID,
				Name:           name,
				ProfileID:      profileID,
				CivilizationID: civID,
			})
		}
	}

	cur.skip(26)
	readHDString(cur)
	cur.skip(8)
	readHDString(cur)
	cur.skip(8)
	readHDString(cur)
	cur.skip(8)
	copy(hd.GUID[:], cur.read(16))
	hd.Lobby = readHDString(cur)
	hd.Mod = readHDString(cur)
	cur.skip(8)
	readHDString(cur)
	cur.skip(4)

	logger().Debug("hd: done", "pos", cur.tell(), "players", len(hd.Players))

	return hd
}
