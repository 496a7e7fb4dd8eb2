// This file contains named byte-level constants for the heuristic object
// scan and the various anchors the players/scenario blocks resynchronize on
// (named constants beat scattered magic numbers).

package repparser

// objectClasses are the class-id bytes that can begin a live in-game object
// record inside the otherwise-unparseable per-player padding.
var objectClasses = []byte{0x0a, 0x1e, 0x46, 0x50, 0x14}

// blockEnd terminates an object sub-block.
var blockEnd = []byte{0x00, 0x0b}

// playerEndPattern marks the end of a player's embedded-object section: 8
// 0xff bytes, one wildcard byte, 16 zero bytes, then a 0x0b terminator.
func playerEndPattern() *pattern {
	return &pattern{segments: []segment{
		lit(0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff),
		any(1),
		lit(0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00),
		lit(0x0b),
	}}
}

// skipObject is a fixed fingerprint/length pair describing a junk object
// record that should be discarded rather than decoded. objectBlock discards
// a matching record and moves on by its usual 31-byte stride; length is not
// consulted.
type skipObject struct {
	fingerprint []byte
	length      int // 252 bytes; the fingerprint's 0x0287 is object id 647, a junk DE object, thousands per file
}

var skipObjects = []skipObject{
	{fingerprint: []byte{0x1e, 0x00, 0x87, 0x02}, length: 252},
}

// objectStartPattern marks the first object record after a player's fixed
// fields: 0x0b 0x00 ?? 0x00 0x00 0x00 0x02 0x00 0x00.
func objectStartPattern() *pattern {
	return &pattern{segments: []segment{
		lit(0x0b, 0x00),
		any(1),
		lit(0x00, 0x00, 0x00, 0x02, 0x00, 0x00),
	}}
}

// objectFingerprint matches a live object record for the given player
// number: one of the five class bytes, the player number, four bytes whose
// leading pair excludes 0xffff and 0x0000, a literal 0xffffffff, then a
// non-0xff trailer byte.
func objectFingerprint(playerNumber byte) *pattern {
	return &pattern{segments: []segment{
		oneOf(objectClasses...),
		lit(playerNumber),
		exclude(4, func(w []byte) bool {
			return (w[0] == 0xff && w[1] == 0xff) || (w[0] == 0x00 && w[1] == 0x00)
		}),
		lit(0xff, 0xff, 0xff, 0xff),
		exclude(1, func(w []byte) bool { return w[0] == 0xff }),
	}}
}

// gaiaAnchor returns the literal anchor used to locate the players block:
// 0x05 0x00 + "Gaia"/"GAIA" + 0x00.
func gaiaAnchor(de bool) []byte {
	tag := "GAIA"
	if de {
		tag = "Gaia"
	}
	b := make([]byte, 0, 7)
	b = append(b, 0x05, 0x00)
	b = append(b, tag...)
	b = append(b, 0x00)
	return b
}

// nonDESettingsAnchor is the 8-byte little-endian IEEE-754 encoding of 1.6,
// used to resynchronize the scenario block in non-DE editions.
var nonDESettingsAnchor = []byte{0x9a, 0x99, 0x99, 0x99, 0x99, 0x99, 0xf9, 0x3f}

// deStringMagic is the 2-byte magic distinguishing DE/HD length-prefixed
// strings from ordinary int-prefixed strings.
var deStringMagic = []byte{0x60, 0x0a}

// aiZeroRunLen is the length of the run of zero bytes marking the end of an
// unprefixed AI blob.
const aiZeroRunLen = 4096
