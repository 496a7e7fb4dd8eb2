// This file contains the type describing the UserPatch mod version.

package rep

// ModVersion is the (major, minor) UserPatch mod version pair. It is
// populated only for VersionUserPatch15 replays; the source layout this is
// read from (offset 198 of a decoded f32 array) has no known meaning for
// other versions, so Header.Mod is nil for them.
type ModVersion struct {
	Major int
	Minor string
}
