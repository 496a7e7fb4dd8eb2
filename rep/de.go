// This file contains the types describing Definitive-Edition-only header
// data.

package rep

import "github.com/google/uuid"

// DEData holds Definitive-Edition metadata: DLCs, game settings, per-player
// slots, the accumulated string table, GUID, and lobby/mod names.
type DEData struct {
	Build     uint32 `json:",omitempty"`
	Timestamp uint32 `json:",omitempty"`

	DLCIDs []uint32

	MapDimension uint32 `json:",omitempty"`
	DifficultyID uint32 `json:",omitempty"`

	RMSMapID uint32

	VictoryTypeID       uint32
	StartingResourcesID uint32

	// StartingAgeID/EndingAgeID are already normalized: decremented by 2
	// when the raw value is >0, else clamped to 0.
	StartingAgeID      int32
	EndingAgeID        int32
	Speed              float32
	TreatyLength       uint32
	PopulationLimit    uint32
	NumPlayers         uint32
	LegacyDifficultyID uint8 `json:",omitempty"`

	// TeamTogether is the negation of the raw random_positions flag.
	TeamTogether      bool
	AllTechnologies   bool
	LockTeams         bool
	LockSpeed         bool
	Multiplayer       bool
	Cheats            bool
	RecordGame        bool
	AnimalsEnabled    bool
	PredatorsEnabled  bool
	TurboEnabled      bool
	SharedExploration bool
	TeamPositions     bool

	Players []*DEPlayer

	Rated      bool
	AllowSpecs bool
	Visibility uint32
	HiddenCivs bool
	SpecDelay  uint32

	// Strings is the full accumulated DE-string table read across every
	// string block in this section.
	Strings []string `json:"-"`

	RMSModID    string
	RMSFilename string

	GUID  uuid.UUID
	Lobby string
	Mod   string
}

// DEPlayer is one slot from the DE player-slot table (distinct from the
// embedded-objects Player recovered later in the players block).
type DEPlayer struct {
	ColorID        int32
	TeamID         int8
	CivilizationID uint32
	CustomCivIDs   []uint32 `json:",omitempty"`
	AIName         string
	CensoredName   string `json:",omitempty"`
	Name           string
	Type           uint32
	ProfileID      uint32
	Number         int32
	PreferRandom   bool
}
