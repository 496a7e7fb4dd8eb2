// This file contains the types describing the lobby block.

package rep

// Lobby holds reveal/population/game-type settings, chat, and the DE-only
// seed.
type Lobby struct {
	RevealMapID uint32
	MapSize     uint32

	// Population is already scaled: x25 for legacy (non-DE/HD) editions,
	// x1 for DE/HD.
	Population uint32
	GameTypeID int8
	LockTeams  bool

	// Chat holds every non-empty chat entry, trailing NUL bytes stripped.
	Chat []string `json:",omitempty"`

	// Seed is populated only for DE replays.
	Seed *int32 `json:",omitempty"`
}
