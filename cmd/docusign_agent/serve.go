package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DiwakaruniKoushik/DocuSign/internal/config"
	"github.com/DiwakaruniKoushik/DocuSign/internal/server"
)

var (
	servePort    int
	serveUploads string
	serveOutput  string
	serveConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes upload, export and file endpoints for document blank detection and filling.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveUploads, "uploads", "", "Directory for uploaded documents")
	serveCmd.Flags().StringVar(&serveOutput, "output", "", "Directory for filled/converted artifacts")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:      servePort,
		UploadDir: serveUploads,
		OutputDir: serveOutput,
	}

	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Hints are optional: without a key the server runs with hints disabled.
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		UploadDir: cfg.UploadDir,
		OutputDir: cfg.OutputDir,
		APIKey:    apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
