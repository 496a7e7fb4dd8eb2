// This file contains the types describing a player and their objects.

package rep

import "github.com/icza/mgzparse/rep/repcore"

// Player represents one of num_players real players recovered from the
// embedded-objects pass. Slot-table data from the DE/HD
// block is separate (see DEData.Players/HDData.Players) and may list a
// different count of entries.
type Player struct {
	// Number is the player's index (0-based) as recovered by the object
	// scan.
	Number int32

	// Type is the raw player-type byte read alongside the diplomacy table.
	Type int32

	// Name is the player's name.
	Name string

	// Diplomacy is the fixed-length sequence of diplomacy stances towards
	// every other player slot.
	Diplomacy []int32

	// CivilizationID identifies the player's civilization.
	CivilizationID uint32

	// ColorID identifies the player's color.
	ColorID int32

	// Position is the player's starting position in game-world units.
	Position repcore.Point

	// Objects is the merged (alive + sleeping + doppelganger) object list
	// for this player.
	Objects []*Object
}

// ObjectState classifies which object-block pass an Object was recovered
// from.
type ObjectState int8

const (
	// ObjectAlive objects were found in the first (alive) pass.
	ObjectAlive ObjectState = 0
	// ObjectSleeping objects were found in the second (sleeping) pass.
	ObjectSleeping ObjectState = 1
	// ObjectDoppelganger objects were found in the third (doppelganger) pass.
	ObjectDoppelganger ObjectState = 2
)

// Object is a single in-game object recovered by the heuristic object scan.
type Object struct {
	ClassID    int8
	ObjectID   uint16
	InstanceID uint32
	Position   repcore.Point

	// Index classifies which object-block pass this object came from.
	Index ObjectState
}
