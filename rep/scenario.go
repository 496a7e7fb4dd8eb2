// This file contains the types describing the scenario block.

package rep

// Scenario holds the subset of scenario-instance data this parser surfaces:
// the map/difficulty identifiers carried in the scenario header and, for
// Definitive Edition, the trigger system's ordering. Trigger/effect/
// condition payloads themselves are read (to keep the cursor synchronized)
// but not retained field-by-field; see repparser/scenario.go.
type Scenario struct {
	MapID        uint32
	DifficultyID uint32

	Instructions       string
	ScenarioFilename   string

	// TriggerCount is the number of triggers read (DE only).
	TriggerCount uint32 `json:",omitempty"`

	// TriggerOrder is the trigger_list_order array (DE only).
	TriggerOrder []uint32 `json:",omitempty"`
}
