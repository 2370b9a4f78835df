// Package main provides the entry point for the document fill CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docusign_agent",
	Short: "Document blank detection and fill",
	Long:  "Detects fillable blanks ([Company], $[Amount], signature lines) in .docx documents, previews them inline in HTML, and produces filled copies via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
