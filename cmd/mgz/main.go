/*

mgz is a CLI to inspect Age of Empires II recorded game files: parsing the
header to JSON, hex-dumping raw header/body byte ranges, and splitting a
file into its separate header/body blobs.

*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName    = "mgz"
	appVersion = "v0.1.0"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Inspect Age of Empires II recorded game files",
		Version: appVersion + " (parser " + parserVersion() + ")",
	}
	cmd.AddCommand(newParseHeaderCmd())
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newExtractCmd())
	cmd.AddCommand(newParseBodyCmd())
	return cmd
}
