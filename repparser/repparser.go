/*

Package repparser implements a fast, header-only parser for Age of Empires
II recorded game files (UserPatch 1.5, HD Edition, and Definitive Edition).

The header is a single DEFLATE-compressed block at the start of the file;
this package inflates it and walks it block by block: version, DE/HD
extensions, metadata, map, players (recovered by anchor search, since
per-player records carry no declared length), an optional scenario section,
and the lobby. The body (operation) stream that follows is out of scope
here; see package repbody for a minimal, non-exhaustive reader of it.

The package is safe for concurrent use.

Ground-truth sources for the layouts implemented here:

https://github.com/happyleavesaoc/aoc-mgz (the mgz.fast.header module)

*/
package repparser

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/icza/mgzparse/rep"
	"github.com/icza/mgzparse/rep/repbody"
)

const (
	// Version is a Semver2 compatible version of the parser.
	Version = "v0.1.0"
)

var (
	// ErrNotReplayFile indicates the given data is too short to hold the
	// 8-byte length/chapter prefix every recorded-game file starts with.
	ErrNotReplayFile = errors.New("repparser: not a recorded game file")

	// ErrParsing indicates that an unexpected error occurred during
	// parsing that wasn't converted to one of the typed *ParseError
	// subtypes; this should only happen on an implementation bug.
	ErrParsing = errors.New("repparser: parsing")
)

// Config holds parser configuration.
type Config struct {
	// ParseScenario tells if the decoded scenario (trigger/effect/condition)
	// block is attached to the returned Header. The section is always
	// walked and decoded regardless, since the cursor must pass through it
	// on the way to the lobby block; this only controls whether the result
	// is kept, which is rarely needed outside of scenario-editing tools, so
	// it defaults to off.
	ParseScenario bool

	// ParseBody tells if the operation stream following the header is to
	// be decoded (see package repbody). Requires the full file, not just
	// the header bytes.
	ParseBody bool

	// Debug tells if the decompressed header bytes are to be retained in
	// the returned Replay for inspection.
	Debug bool

	_ struct{} // To prevent unkeyed literals
}

// ParseFile parses a recorded-game file's header (and, if cfg.ParseBody is
// set, its body) from disk.
func ParseFile(name string) (*rep.Replay, error) {
	return ParseFileConfig(name, Config{})
}

// ParseFileConfig parses a recorded-game file based on the given parser
// configuration.
func ParseFileConfig(name string, cfg Config) (*rep.Replay, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("repparser: reading file: %w", err)
	}
	return ParseConfig(data, cfg)
}

// Parse parses a recorded-game header from the given byte slice, using
// default configuration (scenario and body parsing both off).
func Parse(data []byte) (*rep.Replay, error) {
	return ParseConfig(data, Config{})
}

// ParseConfig parses a recorded-game file from the given byte slice based
// on the given parser configuration.
func ParseConfig(data []byte, cfg Config) (*rep.Replay, error) {
	return parseProtected(data, cfg)
}

// ParseHeader parses only the header, returning it directly rather than a
// wrapping Replay. Equivalent to ParseConfig(data, cfg).Header with
// cfg.ParseBody ignored: the body is never decoded.
func ParseHeader(data []byte, cfg Config) (h *rep.Header, err error) {
	cfg.ParseBody = false
	r, err := parseProtected(data, cfg)
	if err != nil {
		return nil, err
	}
	return r.Header, nil
}

// parseProtected calls parse(), but protects the function call from
// panics raised by the cursor on truncated or malformed input, converting
// them into the typed *ParseError subtype that caused them.
func parseProtected(data []byte, cfg Config) (r *rep.Replay, err error) {
	// Input is untrusted data, protect the parsing logic.
	// It also protects against implementation bugs.
	defer func() {
		if rec := recover(); rec != nil {
			if pe, ok := asParseError(rec); ok {
				err = pe
				return
			}
			log.Printf("repparser: unexpected panic: %v", rec)
			buf := make([]byte, 2000)
			n := runtime.Stack(buf, false)
			log.Printf("repparser: stack: %s", buf[:n])
			err = ErrParsing
		}
	}()

	return parse(data, cfg)
}

// asParseError reports whether a recovered panic value is one of this
// package's typed parse errors.
func asParseError(rec any) (error, bool) {
	switch e := rec.(type) {
	case *TruncatedError, *MagicMismatchError, *AnchorNotFoundError, *UnsupportedVersionError, *DecompressionError:
		return e.(error), true
	}
	return nil, false
}

// parse runs the full header pipeline in the same order as the format's
// reference implementation: decompress, detect version, DE block, HD
// block, metadata, map, players, (optional) scenario, lobby.
func parse(data []byte, cfg Config) (*rep.Replay, error) {
	logger().Debug("parse: start", "size", len(data))

	dec, err := decompressHeader(data)
	if err != nil {
		return nil, err
	}

	cur := newCursor("version", dec.Header)
	version, gameTag, save, logVersion, err := detectVersion(data, dec.HeaderLength, cur)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, &UnsupportedVersionError{
			ParseError: ParseError{Stage: "version", Offset: int64(cur.tell()), Message: "unrecognized game_tag/save_version combination"},
			Version:    gameTag,
		}
	}

	h := &rep.Header{
		Version:     version,
		GameVersion: gameTag,
		SaveVersion: save,
		LogVersion:  logVersion,
	}

	cur.stage = "de"
	h.DE = parseDE(cur, version.DE, save)

	cur.stage = "hd"
	h.HD = parseHD(cur, version.HD, save)

	cur.stage = "metadata"
	speed, ownerID, numPlayers, cheats := parseMetadata(cur, save)
	h.Metadata = &rep.Metadata{NumPlayers: numPlayers, Speed: speed, OwnerID: ownerID, Cheats: cheats}

	cur.stage = "map"
	h.Map = parseMap(cur, version.DE, version.HD, save)

	cur.stage = "players"
	players, mod, device := parsePlayers(cur, numPlayers, version.DE, version.HD, save)
	h.Players = players
	h.Mod = mod
	h.Device = device

	cur.stage = "scenario"
	scenario := parseScenario(cur, numPlayers, version.DE, version.HD, save)
	if cfg.ParseScenario {
		h.Scenario = scenario
	}

	cur.stage = "lobby"
	h.Lobby = parseLobby(cur, version.DE, version.HD, save)

	if cfg.Debug {
		h.Debug = &rep.HeaderDebug{Data: dec.Header}
	}

	r := &rep.Replay{Header: h}

	if cfg.ParseBody {
		body, err := repbody.ReadOperations(data[dec.HeaderLength:])
		if err != nil {
			return nil, fmt.Errorf("repparser: reading body: %w", err)
		}
		r.Body = body
	}

	logger().Debug("parse: done", "version", version.Name, "save", save, "num_players", numPlayers)

	return r, nil
}
