// This file contains the lobby block parser.

package repparser

import (
	"bytes"

	"github.com/icza/mgzparse/rep"
)

// parseLobby parses the lobby block: reveal/map-size/population/game-type
// settings, the chat log, and (DE only) the game seed.
func parseLobby(cur *hdrCursor, isDE, isHD bool, save float64) *rep.Lobby {
	if isDE {
		cur.skip(5)
		if save >= 20.06 {
			cur.skip(9)
		}
		if save >= 26.16 {
			cur.skip(5)
		}
		if save >= 37 {
			cur.skip(8)
		}
		if save >= 64.3 {
			cur.skip(16)
		}
		if save >= 66.3 {
			cur.skip(1)
		}
	}
	cur.skip(8)
	if !isDE && !isHD {
		cur.skip(1)
	}

	revealMapID := cur.u32()
	cur.skip(4)
	mapSize := cur.u32()
	population := cur.u32()
	gameTypeID := cur.i8()
	lockTeamsRaw := cur.i8()

	if isDE || isHD {
		cur.skip(5)
		if save >= 13.13 {
			cur.skip(4)
		}
		if save >= 25.22 {
			cur.skip(1)
		}
	}

	chatCount := cur.u32()
	var chat []string
	for i := uint32(0); i < chatCount; i++ {
		n := cur.u32()
		message := bytes.Trim(cur.read(n), "\x00")
		if len(message) > 0 {
			chat = append(chat, string(message))
		}
	}

	var seed *int32
	if isDE {
		s := cur.i32()
		seed = &s
	}

	scaledPopulation := population
	if !isDE && !isHD {
		scaledPopulation = population * 25
	}

	logger().Debug("lobby: done", "pos", cur.tell(), "chat_count", len(chat))

	return &rep.Lobby{
		RevealMapID: revealMapID,
		MapSize:     mapSize,
		Population:  scaledPopulation,
		GameTypeID:  gameTypeID,
		LockTeams:   lockTeamsRaw == 1,
		Chat:        chat,
		Seed:        seed,
	}
}
