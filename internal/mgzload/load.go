// Package mgzload locates and reads the raw recorded-game bytes a CLI
// invocation was pointed at, unwrapping a ZIP archive if necessary.
//
// Grounded on the load_mgz_bytes helper duplicated across every CLI
// collaborator in the reference implementation (mgz/cli/dump.py,
// extract.py, parse_header.py): a .zip is searched for a .mgz or
// .aoe2record entry, falling back to its first entry, before the raw
// file bytes are read.
package mgzload

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load returns the raw recorded-game bytes at path, transparently
// unwrapping a ZIP archive containing one.
func Load(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mgzload: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mgzload: %w", err)
	}

	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		// Not a ZIP archive (or a malformed one); treat as a raw file.
		return os.ReadFile(path)
	}

	return readFromZIP(zr)
}

// readFromZIP picks the best candidate entry from an open ZIP archive and
// returns its uncompressed bytes.
func readFromZIP(zr *zip.Reader) ([]byte, error) {
	if len(zr.File) == 0 {
		return nil, fmt.Errorf("mgzload: zip archive is empty")
	}

	entry := zr.File[0]
	for _, zf := range zr.File {
		lower := strings.ToLower(zf.Name)
		if strings.HasSuffix(lower, ".mgz") || strings.HasSuffix(lower, ".aoe2record") {
			entry = zf
			break
		}
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("mgzload: opening %q in zip: %w", entry.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("mgzload: reading %q from zip: %w", entry.Name, err)
	}
	return data, nil
}
