// This file contains the version classification enum.

package repcore

import (
	"fmt"
	"strings"
)

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// Version identifies the game edition / build family a replay was recorded with.
type Version struct {
	Enum

	// ShortName is a shorter, code-like name of the version.
	ShortName string

	// DE reports whether this version is the Definitive Edition.
	DE bool

	// HD reports whether this version is the HD Edition.
	HD bool
}

// Versions is an enumeration of the supported versions.
var Versions = []*Version{
	{Enum{"UserPatch 1.5"}, "USERPATCH15", false, false},
	{Enum{"HD Edition"}, "HD", false, true},
	{Enum{"Definitive Edition"}, "DE", true, false},
}

// Named versions.
var (
	VersionUserPatch15 = Versions[0]
	VersionHD          = Versions[1]
	VersionDE          = Versions[2]
)

// versionRule maps a game-tag prefix and a save-version range to a Version.
// minSave is inclusive, maxSave is exclusive; maxSave of 0 means unbounded.
//
// The real mapping (the exact game/log/save triples Age of Empires II has
// shipped with over the years) is external data not reconstructed here;
// this table covers the three families this parser supports and is
// deliberately coarse.
type versionRule struct {
	tagPrefix string
	minSave   float64
	maxSave   float64
	version   *Version
}

var versionRules = []versionRule{
	{"VER 9.3", 0, 0, VersionUserPatch15},
	{"VER 9.4", 0, 20.0, VersionHD},
	{"VER 9.4", 20.0, 0, VersionDE},
	{"VER 9.8", 0, 0, VersionDE},
	{"TRL 9.3", 0, 0, VersionDE},
}

// ClassifyVersion determines the Version from the raw game tag (the 7-byte
// field at the start of the decompressed header, e.g. "VER 9.4") and the
// decoded save version.
// It returns nil if no rule matches, in which case the caller should treat
// the replay as unsupported.
func ClassifyVersion(gameTag string, save float64) *Version {
	tag := strings.TrimRight(gameTag, "\x00 ")
	for _, r := range versionRules {
		if !strings.HasPrefix(tag, r.tagPrefix) {
			continue
		}
		if save < r.minSave {
			continue
		}
		if r.maxSave != 0 && save >= r.maxSave {
			continue
		}
		return r.version
	}
	return nil
}
