package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/langbench/accutable/internal/config"
	"github.com/langbench/accutable/internal/manifest"
	"github.com/langbench/accutable/internal/matrix"
	"github.com/langbench/accutable/internal/render"
	"github.com/langbench/accutable/internal/utils"
	"github.com/spf13/cobra"
)

var (
	writeInputPath  string
	writeOutputPath string
	writeNoManifest bool
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Render the accuracy comparison table and write it to disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := resolvePaths()

		m, err := matrix.LoadCSV(input)
		if err != nil {
			return err
		}
		if debug {
			fmt.Fprintf(os.Stderr, "loaded %d languages, %d metric columns from %s\n",
				len(m.Languages()), len(m.Columns()), input)
		}

		table, err := render.ComparisonTable(m)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(output, []byte(table)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}

		if !writeNoManifest && cfg != nil && cfg.ManifestEnabled {
			err := manifest.Record(cfg.ManifestPath, manifest.Entry{
				InputPath:  input,
				OutputPath: output,
				Languages:  len(m.Languages()),
				Columns:    len(m.Columns()),
			})
			if err != nil {
				// The table is already on disk; a manifest failure is not fatal.
				fmt.Fprintf(os.Stderr, "⚠ Warning: failed to record run: %v\n", err)
			}
		}

		fmt.Printf("✓ Accuracy table written to %s\n", output)
		return nil
	},
}

// resolvePaths applies flag > config > default precedence for the input and
// output locations.
func resolvePaths() (input, output string) {
	input = cfgpkg.DefaultInputPath
	output = cfgpkg.DefaultOutputPath
	if cfg != nil {
		if cfg.InputPath != "" {
			input = cfg.InputPath
		}
		if cfg.OutputPath != "" {
			output = cfg.OutputPath
		}
	}
	if writeInputPath != "" {
		input = writeInputPath
	}
	if writeOutputPath != "" {
		output = writeOutputPath
	}
	return input, output
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeInputPath, "input", "i", "", "aggregated accuracy CSV to read (overrides config)")
	writeCmd.Flags().StringVarP(&writeOutputPath, "output", "o", "", "file to write the table to (overrides config)")
	writeCmd.Flags().BoolVar(&writeNoManifest, "no-manifest", false, "skip recording this run in the manifest")
}
