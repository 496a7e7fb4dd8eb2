// This file contains the types describing the metadata block.

package rep

// Metadata holds the AI-skip/game-speed/owner/player-count fields common
// across every supported version.
type Metadata struct {
	// NumPlayers gates every later stage (the players block reads exactly
	// this many player records).
	NumPlayers int8

	Speed   float32
	OwnerID int16
	Cheats  bool
}
