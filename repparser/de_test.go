package repparser

import "testing"

func TestNormalizeAgeID(t *testing.T) {
	cases := []struct {
		raw  uint32
		want int32
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 3},
	}
	for _, c := range cases {
		if got := normalizeAgeID(c.raw); got != c.want {
			t.Errorf("normalizeAgeID(%d) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestFindRMSMod(t *testing.T) {
	strs := []string{
		"unrelated",
		"SUBSCRIBEDMODS:RANDOM_MAPS:MyCoolMap.rms:123456_extra",
	}
	modID, filename := findRMSMod(strs)
	if modID != "123456" {
		t.Errorf("modID = %q, want %q", modID, "123456")
	}
	if filename != "MyCoolMap.rms" {
		t.Errorf("filename = %q, want %q", filename, "MyCoolMap.rms")
	}
}

func TestFindRMSModNoMatch(t *testing.T) {
	modID, filename := findRMSMod([]string{"foo", "bar:baz"})
	if modID != "" || filename != "" {
		t.Errorf("expected empty results, got (%q, %q)", modID, filename)
	}
}
