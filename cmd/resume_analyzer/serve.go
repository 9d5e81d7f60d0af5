package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyzing resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Analyzer config file (default: embedded config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzerConfig(serveConfig)
	if err != nil {
		return err
	}

	// Optional bearer auth: enabled only when AUTH_SECRET is set.
	authCfg, err := config.NewAuthConfig()
	if err != nil {
		return fmt.Errorf("failed to load auth config: %w", err)
	}
	if authCfg == nil {
		log.Println("AUTH_SECRET not set; API authentication is disabled")
	}

	// Optional AI narrative: enabled only when GEMINI_API_KEY is set.
	generator, err := buildGenerator(ctx, os.Getenv("GEMINI_API_KEY") != "")
	if err != nil {
		return err
	}
	defer generator.Close()

	analyzer := pipeline.New(cfg, generator)
	srv := server.New(server.Config{Port: servePort, Auth: authCfg}, cfg, analyzer)
	return srv.Start()
}
