package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DiwakaruniKoushik/DocuSign/internal/detect"
	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/observability"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

var (
	detectJSON    bool
	detectVerbose bool
)

var detectCmd = &cobra.Command{
	Use:   "detect [files...]",
	Short: "Detect fillable blanks in .docx documents",
	Long:  `Scan one or more .docx documents for bracketed tokens and signature lines and print the detected fields.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Print results as JSON")
	detectCmd.Flags().BoolVarP(&detectVerbose, "verbose", "v", false, "Print formatted summaries")
	rootCmd.AddCommand(detectCmd)
}

// detection is one document's result in the CLI output.
type detection struct {
	Filename     string        `json:"filename"`
	Placeholders []types.Field `json:"placeholders"`
	Summary      types.Summary `json:"summary"`
}

func runDetect(_ *cobra.Command, args []string) error {
	// Documents are independent, so detection runs one goroutine per file.
	results := make([]detection, len(args))
	g, _ := errgroup.WithContext(context.Background())
	for i, path := range args {
		g.Go(func() error {
			doc, err := docx.Read(path)
			if err != nil {
				return err
			}
			res := detect.Placeholders(doc)
			types.SortByLine(res.Fields)
			results[i] = detection{Filename: path, Placeholders: res.Fields, Summary: res.Summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if detectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, r := range results {
		if detectVerbose {
			printer.PrintDetection(r.Filename, r.Placeholders, r.Summary)
			continue
		}
		printDetectionLine(r)
	}
	return nil
}

func printDetectionLine(r detection) {
	enc := json.NewEncoder(os.Stdout)
	_ = enc.Encode(map[string]any{
		"filename": r.Filename,
		"summary":  r.Summary,
	})
}
