// Package main implements the resume builder CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Jay-1409/auris-resume-fast-edition/internal/ingestion"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/observability"
	"github.com/Jay-1409/auris-resume-fast-edition/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render [files...]",
	Short: "Render resume documents to HTML",
	Long:  "Reads one or more resume document JSON files, migrates legacy payloads, and writes a print-ready HTML page for each.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var (
	renderOutput  string
	renderOutDir  string
	renderVerbose bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file (single input only)")
	renderCmd.Flags().StringVar(&renderOutDir, "out-dir", "", "Directory to write one HTML file per input")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print a summary of each parsed document")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderOutput != "" && len(args) > 1 {
		return fmt.Errorf("--out only works with a single input; use --out-dir for multiple files")
	}
	if renderOutput != "" && renderOutDir != "" {
		return fmt.Errorf("--out and --out-dir are mutually exclusive")
	}

	if renderOutDir != "" {
		if err := os.MkdirAll(renderOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(4)

	for _, input := range args {
		input := input
		g.Go(func() error {
			return renderFile(input)
		})
	}

	return g.Wait()
}

// renderFile renders one document file to its output path.
func renderFile(input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	record, err := ingestion.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}

	if renderVerbose {
		observability.NewPrinter(os.Stderr).PrintRecordSummary(record)
	}

	page, err := rendering.RenderPage(record)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", input, err)
	}

	output := outputPath(input)
	if err := os.WriteFile(output, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Rendered %s -> %s\n", input, output)
	return nil
}

// outputPath resolves where the rendered HTML for an input file goes.
func outputPath(input string) string {
	if renderOutput != "" {
		return renderOutput
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".html"
	if renderOutDir != "" {
		return filepath.Join(renderOutDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
