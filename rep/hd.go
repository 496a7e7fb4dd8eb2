// This file contains the types describing HD-Edition-only header data.

package rep

import "github.com/google/uuid"

// HDData holds HD-edition metadata: simpler than DEData, with a fixed
// 8-slot player table.
type HDData struct {
	DLCCount uint32

	DifficultyID uint32
	MapID        uint32

	// Players contains only slots with a non-empty name.
	Players []*HDPlayer

	GUID  uuid.UUID
	Lobby string
	Mod   string
}

// HDPlayer is one non-empty slot from the HD player-slot table.
type HDPlayer struct {
	Number         int32
	ColorID        int32
	CivilizationID uint32
	Name           string
	ProfileID      uint64
}
