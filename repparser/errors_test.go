package repparser

import (
	"errors"
	"testing"
)

func TestTruncatedErrorMessage(t *testing.T) {
	err := &TruncatedError{
		ParseError: ParseError{Stage: "players", Offset: 42, Message: "read past end of buffer"},
		Requested:  10,
		Remaining:  3,
	}
	want := "mgz: players: truncated: requested 10 bytes, 3 remaining (offset 42)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDecompressionErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &DecompressionError{
		ParseError: ParseError{Stage: "decompress"},
		Cause:      cause,
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAnchorNotFoundErrorMessage(t *testing.T) {
	err := &AnchorNotFoundError{
		ParseError: ParseError{Stage: "players", Offset: 100, Message: "could not find player end"},
		Anchor:     "player-end",
	}
	want := `mgz: players: anchor "player-end" not found (searched from offset 100)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
