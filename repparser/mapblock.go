// This file contains the map block parser.

package repparser

import "github.com/icza/mgzparse/rep"

type tileFormat int

const (
	tileLegacy tileFormat = iota
	tileDEPre62
	tileDE62
)

// parseMap parses the embedded map block: the DE/HD/legacy tile grid plus
// the per-zone float blocks and post-tile data blocks that follow it.
func parseMap(cur *hdrCursor, isDE, isHD bool, save float64) *rep.MapData {
	format := tileLegacy
	if isDE {
		if save >= 62.0 {
			format = tileDE62
		} else {
			format = tileDEPre62
		}
		cur.skip(8)
	}

	sizeX := cur.u32()
	sizeY := cur.u32()
	zoneNum := cur.u32()
	tileNum := sizeX * sizeY

	for zi := uint32(0); zi < zoneNum; zi++ {
		if isDE || isHD {
			cur.skip(2048 + tileNum*2)
		} else {
			cur.skip(1275 + tileNum)
		}
		numFloats := cur.u32()
		cur.skip(numFloats * 4)
		cur.skip(4)
	}

	allVisibleRaw := cur.i8()
	cur.skip(1)

	tiles := make([]rep.Tile, tileNum)
	for i := range tiles {
		tiles[i] = readTile(cur, format)
	}

	numData := cur.u32()
	cur.skip(4)
	cur.skip(numData * 4)
	for i := uint32(0); i < numData; i++ {
		numObs := cur.u32()
		cur.skip(numObs * 8)
	}

	x2 := cur.u32()
	y2 := cur.u32()
	cur.skip(x2 * y2 * 4)
	if save >= 61.5 {
		cur.skip(x2 * y2 * 4)
	}
	restoreTime := cur.u32()

	logger().Debug("map: done", "pos", cur.tell(), "size_x", sizeX, "size_y", sizeY)

	return &rep.MapData{
		Dimension:   sizeX,
		AllVisible:  allVisibleRaw == 1,
		RestoreTime: restoreTime,
		Tiles:       tiles,
	}
}

func readTile(cur *hdrCursor, format tileFormat) rep.Tile {
	switch format {
	case tileDEPre62: // '<bxb6x'
		terrain := cur.i8()
		cur.skip(1)
		elevation := cur.i8()
		cur.skip(6)
		return rep.Tile{Terrain: terrain, Elevation: elevation}
	case tileDE62: // '<bxxb6x'
		terrain := cur.i8()
		cur.skip(2)
		elevation := cur.i8()
		cur.skip(6)
		return rep.Tile{Terrain: terrain, Elevation: elevation}
	default: // tileLegacy: '<xbbx'
		cur.skip(1)
		terrain := cur.i8()
		elevation := cur.i8()
		cur.skip(1)
		return rep.Tile{Terrain: terrain, Elevation: elevation}
	}
}
