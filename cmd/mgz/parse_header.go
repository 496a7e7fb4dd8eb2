package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icza/mgzparse/internal/mgzload"
	"github.com/icza/mgzparse/repparser"
)

// parserVersion reports the repparser package version, surfaced in the
// root command's --version output.
func parserVersion() string {
	return repparser.Version
}

func newParseHeaderCmd() *cobra.Command {
	var (
		outPath string
		indent  int
		debug   bool
		scenario bool
	)

	cmd := &cobra.Command{
		Use:   "parse-header REC_PATH",
		Short: "Parse a recorded game's header and print it as JSON",
		Long: "Parse a recorded game's header and print it as JSON.\n" +
			"Input may be a raw .mgz/.aoe2record file or a .zip archive containing one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := mgzload.Load(args[0])
			if err != nil {
				return err
			}

			if debug {
				repparser.SetLogger(newDebugLogger())
			}

			h, err := repparser.ParseHeader(raw, repparser.Config{ParseScenario: scenario, Debug: debug})
			if err != nil {
				return fmt.Errorf("parsing header: %w", err)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			if indent > 0 {
				enc.SetIndent("", spaces(indent))
			}
			return enc.Encode(h)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write parsed JSON to this file (default: stdout)")
	cmd.Flags().IntVar(&indent, "indent", 2, "JSON indentation (0 for compact)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging from the header parser, and retain raw header bytes")
	cmd.Flags().BoolVar(&scenario, "scenario", false, "also parse the scenario (trigger/effect/condition) block")

	return cmd
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
