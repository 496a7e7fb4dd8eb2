package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/icza/mgzparse/rep/repbody"
)

func newParseBodyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-body BODY_PATH",
		Short: "Parse an extracted body blob and print its operations as JSON Lines",
		Long: "Parse an extracted body blob (as produced by 'mgz extract') and print\n" +
			"one JSON object per recovered operation, one per line.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading body file: %w", err)
			}

			body, err := repbody.ReadOperations(data)
			if err != nil {
				return fmt.Errorf("parsing body: %w", err)
			}

			enc := json.NewEncoder(os.Stdout)
			for _, op := range body.Operations {
				if err := enc.Encode(op); err != nil {
					return fmt.Errorf("encoding operation: %w", err)
				}
			}
			return nil
		},
	}
	return cmd
}
