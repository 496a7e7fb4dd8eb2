// This file contains the players block parser, the hardest
// block in the format: player records are separated by junk bytes with no
// declared length, so both the player-slot table and the embedded live
// objects inside each slot are recovered by anchor search rather than by a
// fixed layout.

package repparser

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/icza/mgzparse/rep"
	"github.com/icza/mgzparse/rep/repcore"
)

var pointsVersionLegacy = []byte{0x00, 0x00, 0x00, 0x40}
var pointsVersionModern = []byte{0x66, 0x66, 0x06, 0x40}

// parsePlayers locates the Gaia anchor, peeks the UserPatch mod version,
// then parses each player slot and the trailing per-player scoring blocks.
func parsePlayers(cur *hdrCursor, numPlayers int8, isDE, isHD bool, save float64) ([]*rep.Player, *rep.ModVersion, uint8) {
	start := cur.tell()
	anchorAbs := cur.find(gaiaAnchor(isDE || isHD), start, 0)
	if anchorAbs == notFound {
		panic(&AnchorNotFoundError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(start), Message: "gaia anchor not found"},
			Anchor:     "gaia",
		})
	}

	rev := uint32(43)
	if save >= 61.5 {
		rev = 7 + uint32(numPlayers)*4
	}
	target := anchorAbs - uint32(numPlayers) - rev
	cur.seekAbs(target)

	mod := parseMod(cur, numPlayers, isDE, isHD)

	players := make([]*rep.Player, 0, numPlayers)
	var device uint8
	for pn := int8(0); pn < numPlayers; pn++ {
		p, dev := parsePlayer(cur, pn, numPlayers, save)
		players = append(players, p)
		if pn == 0 {
			device = dev
		}
	}

	scoreStart := cur.tell()
	pv := pointsVersionLegacy
	if save >= 61.5 {
		pv = pointsVersionModern
	}
	pvAbs := cur.find(pv, scoreStart, 0)
	if pvAbs == notFound {
		panic(&AnchorNotFoundError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(scoreStart), Message: "points-version marker not found"},
			Anchor:     "points-version",
		})
	}
	cur.seekAbs(pvAbs)

	for pi := int8(0); pi < numPlayers; pi++ {
		cur.skip(4) // pver, unused beyond anchoring
		entries := cur.i32()
		cur.skip(uint32(5 + int(entries)*44))
		points := cur.i32()
		cur.skip(uint32(8 + int(points)*32))
	}

	logger().Debug("players: done", "pos", cur.tell(), "num_players", numPlayers)

	return players, mod, device
}

// parseMod peeks (without consuming) the UserPatch-1.5 mod version, stored
// as value[198] of the f32 array embedded just after the player-slot table
// header. Only meaningful for VersionUserPatch15; nil otherwise.
func parseMod(cur *hdrCursor, numPlayers int8, isDE, isHD bool) *rep.ModVersion {
	start := cur.tell()
	defer cur.seekAbs(start)

	cur.skip(uint32(2 + int(numPlayers) + 36 + 5))
	nameLength := cur.i16()
	cur.skip(uint32(nameLength) + 1)
	resources := cur.u32()
	cur.skip(1)

	values := make([]float32, resources)
	for i := range values {
		values[i] = cur.f32()
	}

	if isDE || isHD || len(values) <= 198 {
		return nil
	}

	number := int(values[198])
	major := number / 1000
	minor := number % 1000
	digits := strconv.Itoa(minor)
	return &rep.ModVersion{Major: major, Minor: strings.Join(strings.Split(digits, ""), ".")}
}

// parsePlayer parses one player's fixed fields plus its embedded live
// objects (alive, sleeping, doppelganger passes), then the device byte and
// the player-end marker for saves new enough to carry one.
func parsePlayer(cur *hdrCursor, playerNumber, numPlayers int8, save float64) (*rep.Player, uint8) {
	rep_ := 9
	if save >= 61.5 {
		rep_ = int(numPlayers)
	}
	typeVal := cur.i8()
	cur.skip(1)
	cur.skip(uint32(numPlayers))
	diplomacy := make([]int32, rep_)
	for i := range diplomacy {
		diplomacy[i] = cur.i32()
	}
	cur.skip(5)
	nameLength := cur.i16()

	name := sanitizeName(cur.read(uint32(nameLength) - 1))
	cur.skip(2)
	resources := cur.u32()
	cur.skip(1)

	resourcesLen := uint32(4)
	if save >= 63 {
		resourcesLen = 8
	}
	cur.skip(resources * resourcesLen)

	cur.skip(1)
	startX := cur.f32()
	startY := cur.f32()
	cur.skip(9)
	civID := cur.i8()
	cur.skip(3)
	colorID := cur.i8()
	cur.skip(1)

	objStart := cur.tell()
	match := cur.findPattern(objectStartPattern(), objStart, 0)
	if match == notFound {
		panic(&AnchorNotFoundError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(objStart), Message: "could not find object start"},
			Anchor:     "object-start",
		})
	}
	start := match + uint32(objectStartPattern().length())

	alive, end := objectBlock(cur, start, byte(playerNumber), rep.ObjectAlive)
	sleeping, end := objectBlock(cur, end, byte(playerNumber), rep.ObjectSleeping)
	doppel, end := objectBlock(cur, end, byte(playerNumber), rep.ObjectDoppelganger)

	if bytesEqual(cur.trySliceAt(end+8, 2), blockEnd) {
		end += 10
	}
	if bytesEqual(cur.trySliceAt(end, 2), blockEnd) {
		end += 2
	}
	cur.seekAbs(end)

	objects := make([]*rep.Object, 0, len(alive)+len(sleeping)+len(doppel))
	objects = append(objects, alive...)
	objects = append(objects, sleeping...)
	objects = append(objects, doppel...)

	var device uint8
	if save >= 37 {
		deviceStart := cur.tell()
		window := cur.read(100)
		device = window[8]

		pe := playerEndPattern()
		endIdx := findPatternIn(window, pe)
		if endIdx >= 0 {
			cur.seekAbs(deviceStart + uint32(endIdx) + uint32(pe.length()))
		} else {
			// Normally the marker is 26 bytes in, but when object parsing
			// went off the rails it can be tens of thousands of bytes in,
			// so fall back to scanning everything still remaining.
			fallbackStart := cur.tell()
			rest := cur.read(cur.len() - fallbackStart)
			endIdx = findPatternIn(rest, pe)
			if endIdx < 0 {
				if playerNumber < numPlayers-1 {
					panic(&AnchorNotFoundError{
						ParseError: ParseError{Stage: cur.stage, Offset: int64(fallbackStart), Message: "could not find player end"},
						Anchor:     "player-end",
					})
				}
			} else {
				cur.seekAbs(fallbackStart + uint32(endIdx) + uint32(pe.length()))
			}
		}
	}

	return &rep.Player{
		Number:         int32(playerNumber),
		Type:           int32(typeVal),
		Name:           name,
		Diplomacy:      diplomacy,
		CivilizationID: uint32(civID),
		ColorID:        int32(colorID),
		Position:       repcore.Point{X: startX, Y: startY},
		Objects:        objects,
	}, device
}

// objectBlock scans [pos, end of buffer) for up to one fixed-stride run of
// live object records belonging to playerNumber, terminated once the
// nearest object-fingerprint match turns out to be the block terminator
// itself rather than a real object.
func objectBlock(cur *hdrCursor, pos uint32, playerNumber byte, index rep.ObjectState) ([]*rep.Object, uint32) {
	fp := objectFingerprint(playerNumber)
	var objects []*rep.Object
	var end uint32
	haveOffset := false
	var offset uint32

	for {
		if !haveOffset {
			matchPos := cur.findPattern(fp, pos, pos+10000)
			blockPos := cur.find(blockEnd, pos, 0)
			if blockPos == notFound {
				break
			}
			end = blockPos - pos + uint32(len(blockEnd))
			if matchPos == notFound {
				break
			}
			offset = matchPos - pos
			haveOffset = true
			for end+8 < offset {
				nextBlock := cur.find(blockEnd, pos+end, 0)
				if nextBlock == notFound {
					break
				}
				end += nextBlock - (pos + end) + uint32(len(blockEnd))
			}
		}
		if end+8 == offset {
			break
		}
		pos += offset

		test := cur.trySliceAt(pos, 4)
		skip := false
		for _, so := range skipObjects {
			if bytesEqual(test, so.fingerprint) {
				skip = true
				break
			}
		}
		if !skip {
			objects = append(objects, parseObjectAt(cur, pos, index))
		}
		haveOffset = false
		pos += 31
	}
	return objects, pos + end
}

// parseObjectAt decodes a fixed-width (31-byte) object record at an
// absolute offset, matching unpack_from('<bxH14xIxff', data, offset).
func parseObjectAt(cur *hdrCursor, pos uint32, index rep.ObjectState) *rep.Object {
	b := cur.sliceAt(pos, 31)
	classID := int8(b[0])
	objectID := binary.LittleEndian.Uint16(b[2:4])
	instanceID := binary.LittleEndian.Uint32(b[18:22])
	x := math.Float32frombits(binary.LittleEndian.Uint32(b[23:27]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(b[27:31]))
	return &rep.Object{
		ClassID:    classID,
		ObjectID:   objectID,
		InstanceID: instanceID,
		Position:   repcore.Point{X: x, Y: y},
		Index:      index,
	}
}

// sliceAt returns a read-only view of n bytes at an absolute offset without
// moving the cursor. Used by the players block's offset-based (rather than
// sequential) object scan.
func (c *hdrCursor) sliceAt(pos, n uint32) []byte {
	if uint64(pos)+uint64(n) > uint64(len(c.b)) {
		c.fail(int(n), len(c.b)-int(pos))
	}
	return c.b[pos : pos+n]
}

// trySliceAt is sliceAt's lenient counterpart: it returns as many bytes as
// are available (possibly fewer than n, possibly nil) instead of panicking,
// matching Python slicing semantics at the few call sites that rely on it.
func (c *hdrCursor) trySliceAt(pos, n uint32) []byte {
	if pos >= uint32(len(c.b)) {
		return nil
	}
	end := pos + n
	if end > uint32(len(c.b)) {
		end = uint32(len(c.b))
	}
	return c.b[pos:end]
}

// findPatternIn searches for the first match of p inside a standalone byte
// slice (as opposed to hdrCursor.findPattern, which searches within the
// cursor's buffer at absolute offsets).
func findPatternIn(b []byte, p *pattern) int {
	for i := 0; i+p.length() <= len(b); i++ {
		if p.matchAt(b, uint32(i)) {
			return i
		}
	}
	return -1
}
