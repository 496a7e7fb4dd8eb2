// This file contains the scenario block parser. The section is always
// walked and decoded since the header is a single sequential cursor and
// every later block depends on this one being fully consumed;
// Config.ParseScenario only controls whether the result is attached to
// the returned Header, since it is the single most expensive and least
// load-bearing block to retain.

package repparser

import (
	"encoding/binary"
	"math"

	"github.com/icza/mgzparse/rep"
)

// parseScenario parses the scenario section following the map/players
// blocks. It resynchronizes on a fixed settings-version (DE) or a fixed
// constant (non-DE) anchor before reading map_id/difficulty_id and, for DE,
// the trigger/effect/condition tables.
func parseScenario(cur *hdrCursor, numPlayers int8, isDE, isHD bool, save float64) *rep.Scenario {
	cur.skip(4) // scenario_version (unused)
	cur.skip(4)
	if save >= 61.5 {
		cur.skip(4)
		if save < 66.6 {
			cur.skip(4)
		}
	}
	cur.skip(16 * 256)
	cur.skip(16 * 4)

	if save >= 66.6 {
		for i := 0; i < 16; i++ {
			cur.skip(8)
			readDEString(cur)
			readDEString(cur)
			cur.skip(4)
		}
	}
	if save >= 61.5 && save < 66.6 {
		cur.skip(64)
	}
	if save < 66.6 {
		for i := 0; i < 16; i++ {
			cur.skip(12)
			if save >= 13.34 {
				cur.skip(4)
			}
			cur.skip(4)
		}
	}

	cur.skip(1)
	cur.skip(4) // elapsed_time (unused)

	if isDE {
		cur.skip(64)
	}
	if save >= 66.6 {
		cur.skip(68)
	}

	scenarioFilename := readShortPrefixedString(cur)
	cur.skip(24)
	instructions := readShortPrefixedString(cur)

	for i := 0; i < 9; i++ {
		readShortPrefixedString(cur)
	}
	cur.skip(78)
	for i := 0; i < 16; i++ {
		readShortPrefixedString(cur)
	}
	cur.skip(196)

	for i := 0; i < 16; i++ {
		cur.skip(24)
		if isDE || isHD {
			cur.skip(4)
		}
	}
	cur.skip(12672)

	if isDE {
		cur.skip(196)
	} else {
		for i := 0; i < 16; i++ {
			cur.skip(332)
		}
	}
	if isHD {
		cur.skip(644)
	}
	cur.skip(88)
	if isHD {
		cur.skip(16)
	}

	mapID := cur.u32()
	difficultyID := cur.u32()

	resyncOnSettingsAnchor(cur, isDE, save)

	sc := &rep.Scenario{
		MapID:            mapID,
		DifficultyID:     difficultyID,
		Instructions:     instructions,
		ScenarioFilename: scenarioFilename,
	}

	if isDE {
		cur.skip(1)
		nTriggers := cur.u32()
		sc.TriggerCount = nTriggers

		for ti := uint32(0); ti < nTriggers; ti++ {
			cur.skip(22)
			cur.skip(4)

			readIntPrefixedString(cur) // description
			readIntPrefixedString(cur) // name
			readIntPrefixedString(cur) // short_description

			nEffects := cur.u32()
			for ei := uint32(0); ei < nEffects; ei++ {
				cur.skip(216)
				readIntPrefixedString(cur) // text
				readIntPrefixedString(cur) // sound
			}
			cur.skip(nEffects * 4)

			nConditions := cur.u32()
			cur.skip(nConditions * 125)
		}

		sc.TriggerOrder = make([]uint32, nTriggers)
		for i := range sc.TriggerOrder {
			sc.TriggerOrder[i] = cur.u32()
		}

		cur.skip(1032)
	}

	logger().Debug("scenario: done", "pos", cur.tell(), "map_id", mapID, "triggers", sc.TriggerCount)

	return sc
}

// resyncOnSettingsAnchor finds the settings-version (DE) or fixed constant
// (non-DE) float anchor in the remainder of the buffer and seeks just past
// it, mirroring the source's remainder.find()-based resynchronization.
func resyncOnSettingsAnchor(cur *hdrCursor, isDE bool, save float64) {
	start := cur.tell()
	var anchor []byte
	var trailing uint32

	if isDE {
		anchor = encodeF64LE(settingsVersionFor(save))
		trailing = 8
	} else {
		anchor = nonDESettingsAnchor
		trailing = 13
	}

	idx := cur.find(anchor, start, 0)
	if idx == notFound {
		panic(&AnchorNotFoundError{
			ParseError: ParseError{Stage: cur.stage, Offset: int64(start), Message: "settings anchor not found"},
			Anchor:     "settings-version",
		})
	}
	cur.seekAbs(idx + trailing)
}

// settingsVersionFor returns the DE scenario settings-block version number
// keyed to save version, per the source's fixed threshold ladder.
func settingsVersionFor(save float64) float64 {
	switch {
	case save >= 66.3:
		return 4.5
	case save >= 64.3:
		return 4.1
	case save >= 63:
		return 3.9
	case save >= 61.5:
		return 3.6
	case save >= 37:
		return 3.5
	case save >= 26.21:
		return 3.2
	case save >= 26.16:
		return 3.0
	case save >= 25.22:
		return 2.6
	case save >= 25.06:
		return 2.5
	case save >= 13.34:
		return 2.4
	default:
		return 2.2
	}
}

func encodeF64LE(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}
