// This file contains the types describing the replay header.

package rep

import "github.com/icza/mgzparse/rep/repcore"

// Header models the parsed replay header: the single aggregate record
// produced by repparser.ParseHeader.
type Header struct {
	// Version is the classified game edition / build family.
	Version *repcore.Version

	// GameVersion is the raw 7-character ASCII game tag (e.g. "VER 9.4").
	GameVersion string

	// SaveVersion is the fractional save-version, rounded to 2 decimals.
	SaveVersion float64

	// LogVersion is the raw log-format version read from the outer file.
	LogVersion uint32

	// Players contains exactly Metadata.NumPlayers entries, in the order
	// recovered from the embedded-objects pass.
	Players []*Player

	// Map describes the map and its tiles.
	Map *MapData

	// DE holds Definitive-Edition-only metadata. Populated only when
	// Version.DE is true.
	DE *DEData

	// HD holds HD-Edition-only metadata. Populated only when Version.HD is
	// true.
	HD *HDData

	// Metadata holds AI/speed/owner/player-count fields common to every
	// version.
	Metadata *Metadata

	// Scenario holds scenario-block data (its trigger fields are filled for
	// DE only); populated for every edition when Config.ParseScenario is
	// set, nil otherwise.
	Scenario *Scenario

	// Lobby holds reveal/population/game-type settings, chat, and seed.
	Lobby *Lobby

	// Mod holds the UserPatch mod version, populated only for
	// VersionUserPatch15 replays.
	Mod *ModVersion

	// Device is the raw byte read from offset 8 of the 100-byte window
	// following the first player's (player 0's) object scan; it stays 0 for
	// saves below 37. Its precise meaning is not defined by any known
	// source; it is reported as-is.
	Device uint8

	// Debug holds optional debug info.
	Debug *HeaderDebug `json:"-"`
}

// HeaderDebug holds debug info for the header section.
type HeaderDebug struct {
	// Data is the raw, decompressed data of the header.
	Data []byte

	// Fields are descriptor entries of the data. repparser does not fill
	// them in; they are left nil.
	Fields []*DebugFieldDescriptor
}

// DebugFieldDescriptor describes some arbitrary data in a byte slice.
type DebugFieldDescriptor struct {
	Offset int    // Offset of the data field
	Length int    // Length of the data field in bytes
	Name   string // Name of the data field
}
