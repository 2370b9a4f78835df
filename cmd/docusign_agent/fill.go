package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DiwakaruniKoushik/DocuSign/internal/docx"
	"github.com/DiwakaruniKoushik/DocuSign/internal/fill"
	"github.com/DiwakaruniKoushik/DocuSign/internal/render"
	"github.com/DiwakaruniKoushik/DocuSign/internal/types"
)

var (
	fillValues string
	fillOut    string
	fillPDF    bool
)

var fillCmd = &cobra.Command{
	Use:   "fill <file>",
	Short: "Produce a filled copy of a document",
	Long:  `Inject user-supplied values into a .docx document's bracketed tokens and signature lines and write the filled copy.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().StringVar(&fillValues, "values", "", "Path to a JSON file of field inputs (required)")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "", "Output path (default: <file>.filled.docx)")
	fillCmd.Flags().BoolVar(&fillPDF, "pdf", false, "Also convert the filled copy to PDF")
	_ = fillCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(fillCmd)
}

func runFill(_ *cobra.Command, args []string) error {
	src := args[0]

	data, err := os.ReadFile(fillValues)
	if err != nil {
		return fmt.Errorf("failed to read values file: %w", err)
	}
	var inputs []types.FieldInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("failed to parse values file: %w", err)
	}

	fields := make([]types.Field, 0, len(inputs))
	for i := range inputs {
		fields = append(fields, inputs[i].Field())
	}

	out := fillOut
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".filled.docx"
	}
	if err := fill.File(src, out, fields); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)

	if fillPDF {
		pdfPath := strings.TrimSuffix(out, filepath.Ext(out)) + ".pdf"
		doc, err := docx.Read(out)
		if err != nil {
			return err
		}
		if err := render.FilePDF(context.Background(), render.HTML(doc), pdfPath); err != nil {
			// The filled copy already exists; a conversion failure is not fatal.
			log.Printf("PDF conversion failed: %v", err)
			return nil
		}
		fmt.Printf("Wrote %s\n", pdfPath)
	}
	return nil
}
