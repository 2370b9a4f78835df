package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DiwakaruniKoushik/DocuSign/internal/align"
	"github.com/DiwakaruniKoushik/DocuSign/internal/detect"
	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/observability"
	"github.com/DiwakaruniKoushik/DocuSign/internal/render"
)

var (
	previewOut     string
	previewVerbose bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Write a marked HTML preview of a document",
	Long:  `Render a .docx document to HTML and insert inert marker spans at each detected field's aligned position.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "Output HTML path (default: <file>.preview.html)")
	previewCmd.Flags().BoolVarP(&previewVerbose, "verbose", "v", false, "Print alignment summary")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	src := args[0]
	doc, err := docx.Read(src)
	if err != nil {
		return err
	}

	result := detect.Placeholders(doc)
	marked := align.MarkHTML(render.HTML(doc), result.Fields)

	out := previewOut
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".preview.html"
	}
	if err := os.WriteFile(out, []byte(render.Page(marked)), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	if previewVerbose {
		markers, err := align.ExtractMarkers(marked)
		if err != nil {
			return fmt.Errorf("failed to inspect preview: %w", err)
		}
		observability.NewPrinter(os.Stdout).PrintMarkers(markers, result.Summary.Total)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
