package main

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icza/mgzparse/internal/mgzload"
)

const defaultDumpLength = 256

func newDumpCmd() *cobra.Command {
	var (
		offset string
		length string
	)

	cmd := &cobra.Command{
		Use:   "dump REC_PATH {header|body}",
		Short: "Hex-dump a byte range from a recorded game's header or body",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := args[1]
			if section != "header" && section != "body" {
				return fmt.Errorf("section must be \"header\" or \"body\", got %q", section)
			}

			off, err := parseIntArg(offset)
			if err != nil {
				return fmt.Errorf("--offset: %w", err)
			}
			n, err := parseIntArg(length)
			if err != nil {
				return fmt.Errorf("--length: %w", err)
			}

			raw, err := mgzload.Load(args[0])
			if err != nil {
				return err
			}

			var data []byte
			var label string
			if section == "header" {
				data, err = inflateHeader(raw)
				if err != nil {
					return err
				}
				label = "header (decompressed)"
			} else {
				data, err = bodyBytes(raw)
				if err != nil {
					return err
				}
				label = "body"
			}

			total := len(data)
			if off >= total {
				return fmt.Errorf("offset %d (0x%x) >= section size %d (0x%x)", off, off, total, total)
			}
			if off+n > total {
				n = total - off
				fmt.Fprintf(os.Stderr, "Note: clamped to %d bytes (section ends at 0x%x)\n", n, total)
			}

			fmt.Printf("[%s] offset=0x%x (%d) length=0x%x (%d) total=0x%x (%d)\n",
				label, off, off, n, n, total, total)
			hexdump(data[off:off+n], off)
			return nil
		},
	}

	cmd.Flags().StringVarP(&offset, "offset", "s", "0", "start offset in bytes (decimal or 0x hex)")
	cmd.Flags().StringVarP(&length, "length", "n", strconv.Itoa(defaultDumpLength), "number of bytes to dump (decimal or 0x hex)")

	return cmd
}

// parseIntArg accepts a decimal or 0x-prefixed hex integer, mirroring the
// reference CLI's auto_int(x) = int(x, 0) argparse type.
func parseIntArg(s string) (int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// inflateHeader strips the 8-byte length/chapter prefix and inflates the
// raw DEFLATE header stream, independently of package repparser so dump
// keeps working even on a header that repparser itself would reject as
// unsupported.
func inflateHeader(raw []byte) ([]byte, error) {
	if len(raw) < 8 {
		return nil, fmt.Errorf("file too small")
	}
	headerLength := binary.LittleEndian.Uint32(raw[0:4])
	if uint64(headerLength) > uint64(len(raw)) {
		return nil, fmt.Errorf("header_length exceeds file size")
	}
	fr := flate.NewReader(bytes.NewReader(raw[8:headerLength]))
	defer fr.Close()
	data, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress header: %w", err)
	}
	return data, nil
}

func bodyBytes(raw []byte) ([]byte, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("file too small")
	}
	headerLength := binary.LittleEndian.Uint32(raw[0:4])
	if uint64(headerLength) > uint64(len(raw)) {
		return nil, fmt.Errorf("header_length exceeds file size")
	}
	return raw[headerLength:], nil
}

func hexdump(data []byte, baseOffset int) {
	for i := 0; i < len(data); i += 16 {
		end := i + 16
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]

		var hexParts []string
		var ascii strings.Builder
		for _, b := range chunk {
			hexParts = append(hexParts, fmt.Sprintf("%02x", b))
			if b >= 32 && b < 127 {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		hexPart := strings.Join(hexParts, " ")
		fmt.Printf("  %08x  %-47s  %s\n", baseOffset+i, hexPart, ascii.String())
	}
}
