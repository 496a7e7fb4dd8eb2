package main

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icza/mgzparse/internal/mgzload"
)

func newExtractCmd() *cobra.Command {
	var (
		headerOut string
		bodyOut   string
	)

	cmd := &cobra.Command{
		Use:   "extract REC_PATH",
		Short: "Split a recorded game into its header and body blobs",
		Long: "Split a recorded game into its header and body blobs.\n" +
			"The header is decompressed before it is written out, behind the\n" +
			"original length field and (when present) chapter address.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := mgzload.Load(args[0])
			if err != nil {
				return err
			}

			stem := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			dir := filepath.Dir(args[0])

			if headerOut == "" {
				headerOut = filepath.Join(dir, stem+".header.bin")
			}
			if bodyOut == "" {
				bodyOut = filepath.Join(dir, stem+".body.bin")
			}

			headerLength, chapterAddress, compressed, body, err := splitHeader(raw)
			if err != nil {
				return err
			}

			fr := flate.NewReader(bytes.NewReader(compressed))
			decompressed, err := io.ReadAll(fr)
			fr.Close()
			if err != nil {
				return fmt.Errorf("failed to decompress header: %w", err)
			}

			out := make([]byte, 0, 4+len(chapterAddress)+len(decompressed))
			lenPrefix := make([]byte, 4)
			binary.LittleEndian.PutUint32(lenPrefix, headerLength)
			out = append(out, lenPrefix...)
			out = append(out, chapterAddress...)
			out = append(out, decompressed...)

			if err := os.WriteFile(headerOut, out, 0o644); err != nil {
				return fmt.Errorf("writing header: %w", err)
			}
			if err := os.WriteFile(bodyOut, body, 0o644); err != nil {
				return fmt.Errorf("writing body: %w", err)
			}

			fmt.Printf("Header (%d bytes) -> %s\n", len(out), headerOut)
			fmt.Printf("Body   (%d bytes)  -> %s\n", len(body), bodyOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&headerOut, "header", "", "output path for the header (default: <name>.header.bin)")
	cmd.Flags().StringVar(&bodyOut, "body", "", "output path for the body (default: <name>.body.bin)")

	return cmd
}

// splitHeader reports header_length, an optional 4-byte chapter_address
// (present unless the following u32 looks too large to be one, mirroring
// the reference implementation's 100,000,000 heuristic), the raw
// compressed header bytes, and the body bytes.
func splitHeader(raw []byte) (headerLength uint32, chapterAddress, compressed, body []byte, err error) {
	if len(raw) < 4 {
		return 0, nil, nil, nil, fmt.Errorf("file too small to be a valid recorded game")
	}
	headerLength = binary.LittleEndian.Uint32(raw[0:4])
	if uint64(headerLength) > uint64(len(raw)) {
		return 0, nil, nil, nil, fmt.Errorf("header_length (%d) exceeds file size (%d)", headerLength, len(raw))
	}
	if len(raw) < 8 {
		return 0, nil, nil, nil, fmt.Errorf("file too small to be a valid recorded game")
	}

	check := binary.LittleEndian.Uint32(raw[4:8])
	if check < 100_000_000 {
		chapterAddress = raw[4:8]
		compressed = raw[8:headerLength]
	} else {
		compressed = raw[4:headerLength]
	}
	body = raw[headerLength:]
	return headerLength, chapterAddress, compressed, body, nil
}
