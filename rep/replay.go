// This file contains the Replay type which models a complete parsed
// recorded game: the header (the core of this parser) plus, optionally, the
// decoded operation stream, a supplemental block outside the header
// parser's core scope but bundled alongside it for convenience.

package rep

import "github.com/icza/mgzparse/rep/repbody"

// Replay models a parsed Age of Empires II recorded game.
type Replay struct {
	// Header of the replay.
	Header *Header

	// Body holds the decoded operation stream, when parsed.
	Body *repbody.Body `json:",omitempty"`
}
