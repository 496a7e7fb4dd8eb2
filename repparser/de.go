// This file contains the Definitive-Edition block parser. The two leading
// version-gated fields (build, timestamp) are conditional-field descriptors
// executed in order; the rest of the block uses plain `if save >= X` checks.

package repparser

import (
	"strings"

	"github.com/icza/mgzparse/rep"
)

// deField is one entry of the conditional-field table driving the DE
// block's leading fixed fields.
type deField struct {
	minSave float64 // field is read only when save >= minSave
	apply   func(cur *hdrCursor, de *rep.DEData)
}

var deLeadingFields = []deField{
	{25.22, func(cur *hdrCursor, de *rep.DEData) { de.Build = cur.u32() }},
	{26.16, func(cur *hdrCursor, de *rep.DEData) { de.Timestamp = cur.u32() }},
}

// parseDE parses the DE-only header block. It returns nil when version is
// not DE, exactly like parse_de returning None.
func parseDE(cur *hdrCursor, isDE bool, save float64) *rep.DEData {
	if !isDE {
		return nil
	}
	de := &rep.DEData{}

	for _, f := range deLeadingFields {
		if save >= f.minSave {
			f.apply(cur, de)
		}
	}

	cur.skip(12)

	dlcCount := cur.u32()
	de.DLCIDs = make([]uint32, dlcCount)
	for i := range de.DLCIDs {
		de.DLCIDs[i] = cur.u32()
	}

	cur.skip(4)
	if save >= 61.5 {
		de.MapDimension = cur.u32()
	} else {
		de.DifficultyID = cur.u32()
	}
	cur.skip(4)
	de.RMSMapID = cur.u32()
	cur.skip(4)

	de.VictoryTypeID = cur.u32()
	de.StartingResourcesID = cur.u32()
	startingAgeRaw := cur.u32()
	endingAgeRaw := cur.u32()
	de.StartingAgeID = normalizeAgeID(startingAgeRaw)
	de.EndingAgeID = normalizeAgeID(endingAgeRaw)

	cur.skip(12)
	de.Speed = cur.f32()
	de.TreatyLength = cur.u32()
	de.PopulationLimit = cur.u32()
	de.NumPlayers = cur.u32()

	cur.skip(14)
	if save >= 61.5 {
		de.LegacyDifficultyID = cur.u8()
	}

	randomPositions := cur.i8()
	allTechnologies := cur.i8()
	cur.skip(1)
	lockTeams := cur.i8()
	lockSpeed := cur.i8()
	multiplayer := cur.i8()
	cheats := cur.i8()
	recordGame := cur.i8()
	animalsEnabled := cur.i8()
	predatorsEnabled := cur.i8()
	turboEnabled := cur.i8()
	sharedExploration := cur.i8()
	teamPositions := cur.i8()

	de.TeamTogether = randomPositions == 0
	de.AllTechnologies = allTechnologies == 1
	de.LockTeams = lockTeams == 1
	de.LockSpeed = lockSpeed == 1
	de.Multiplayer = multiplayer == 1
	de.Cheats = cheats == 1
	de.RecordGame = recordGame == 1
	de.AnimalsEnabled = animalsEnabled == 1
	de.PredatorsEnabled = predatorsEnabled == 1
	de.TurboEnabled = turboEnabled == 1
	de.SharedExploration = sharedExploration == 1
	de.TeamPositions = teamPositions == 1

	cur.skip(12)
	if save >= 25.06 {
		cur.skip(1)
	}
	if save > 50 {
		cur.skip(1)
	}

	numPlayerEntries := 8
	if save >= 37 && save < 66.3 {
		numPlayerEntries = int(de.NumPlayers)
	}
	de.Players = make([]*rep.DEPlayer, 0, numPlayerEntries)
	for pi := 0; pi < numPlayerEntries; pi++ {
		de.Players = append(de.Players, parseDEPlayer(cur, save))
	}

	cur.skip(12)
	if save >= 37 && save < 66.3 {
		emptySlots := 8 - int(de.NumPlayers)
		for i := 0; i < emptySlots; i++ {
			if save >= 61.5 {
				cur.skip(4)
			}
			cur.skip(12)
			readDEString(cur)
			cur.skip(1)
			readDEString(cur)
			readDEString(cur)
			cur.skip(38)
			if save >= 64.3 {
				cur.skip(4)
			}
		}
	}

	cur.skip(4)
	rated := cur.i8()
	allowSpecs := cur.i8()
	de.Visibility = cur.u32()
	hiddenCivs := cur.i8()
	cur.skip(1)
	de.SpecDelay = cur.u32()
	de.Rated = rated == 1
	de.AllowSpecs = allowSpecs == 1
	de.HiddenCivs = hiddenCivs == 1

	cur.skip(1)

	strs := stringBlock(cur)
	cur.skip(8)
	for i := 0; i < 20; i++ {
		strs = append(strs, stringBlock(cur)...)
	}
	de.Strings = strs

	cur.skip(4)
	if save < 25.22 {
		cur.skip(236)
	}
	if save >= 25.22 {
		cur.seekRel(-4)
		l := cur.u32()
		cur.skip(l * 4)
	}
	unknownEntries := cur.u64()
	for i := uint64(0); i < unknownEntries; i++ {
		cur.skip(4)
		readDEString(cur)
		cur.skip(4)
	}
	if save >= 25.02 {
		cur.skip(8)
	}

	copy(de.GUID[:], cur.read(16))
	de.Lobby = readDEString(cur)
	if save >= 25.22 {
		cur.skip(8)
	}
	de.Mod = readDEString(cur)

	cur.skip(33)
	if save >= 20.06 {
		cur.skip(1)
	}
	if save >= 20.16 {
		cur.skip(8)
	}
	if save >= 25.06 {
		cur.skip(21)
	}
	if save >= 25.22 {
		cur.skip(4)
	}
	if save >= 26.16 {
		cur.skip(8)
	}
	if save >= 37 {
		cur.skip(3)
	}
	if save > 50 {
		cur.skip(8)
	}
	if save >= 61.5 {
		cur.skip(1)
	}
	if save >= 63 {
		cur.skip(5)
	}
	if save >= 66.3 {
		c := cur.u32()
		cur.skip(12)
		cur.skip(c * 4)
	}
	readDEString(cur)
	if save >= 67.2 {
		readDEString(cur)
		readDEString(cur)
	}
	cur.skip(8)
	if save >= 37 {
		de.Timestamp = cur.u32()
		cur.skip(4) // trailing x, unused
	}

	de.RMSModID, de.RMSFilename = findRMSMod(de.Strings)

	logger().Debug("de: done", "pos", cur.tell(), "num_players", de.NumPlayers, "strings", len(de.Strings))

	return de
}

// normalizeAgeID implements spec's invariant:
// starting_age_id/ending_age_id are decremented by 2 when >0, else 0.
func normalizeAgeID(raw uint32) int32 {
	if raw > 0 {
		return int32(raw) - 2
	}
	return 0
}

// findRMSMod locates the SUBSCRIBEDMODS/RANDOM_MAPS string entry and
// extracts the RMS mod id and filename from it.
func findRMSMod(strs []string) (modID, filename string) {
	for _, s := range strs {
		parts := strings.Split(s, ":")
		if len(parts) >= 4 && parts[0] == "SUBSCRIBEDMODS" && parts[1] == "RANDOM_MAPS" {
			modID = strings.Split(parts[3], "_")[0]
			filename = parts[2]
		}
	}
	return
}

func parseDEPlayer(cur *hdrCursor, save float64) *rep.DEPlayer {
	p := &rep.DEPlayer{}
	cur.skip(4)
	p.ColorID = cur.i32()
	cur.skip(2)
	p.TeamID = cur.i8()
	cur.skip(9)
	p.CivilizationID = cur.u32()

	if save >= 61.5 {
		customCivCount := cur.u32()
		if save >= 63.0 && customCivCount > 0 {
			p.CustomCivIDs = make([]uint32, customCivCount)
			for i := range p.CustomCivIDs {
				p.CustomCivIDs[i] = cur.u32()
			}
		}
	}

	readDEString(cur) // unused (mirrors source's discarded de_string(data) call)
	cur.skip(1)
	p.AIName = readDEString(cur)
	if save >= 66.3 {
		p.CensoredName = readDEString(cur)
	}
	p.Name = readDEString(cur)
	if save < 66.3 {
		p.CensoredName = p.Name
	}
	p.Type = cur.u32()
	p.ProfileID = cur.u32()
	cur.skip(4)
	p.Number = cur.i32()

	if save < 25.22 {
		cur.skip(8)
	}
	preferRandom := cur.i8()
	p.PreferRandom = preferRandom == 1
	cur.skip(1)
	if save >= 25.06 {
		cur.skip(8)
	}
	if save >= 64.3 {
		cur.skip(4)
	}
	if save >= 67.2 {
		readDEString(cur)
	}

	return p
}
