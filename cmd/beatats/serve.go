package main

import (
	"github.com/spf13/cobra"

	"github.com/shubhamdevjs/BeatATS/internal/schemas"
	"github.com/shubhamdevjs/BeatATS/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes the analysis pipeline as stateless REST endpoints (POST /analyze, /knockout, /match).",
	RunE:  runServe,
}

var (
	servePort       int
	servePolicyFile string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&servePolicyFile, "policy", "", "Path to scoring policy JSON (default: built-in)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy(servePolicyFile)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:             servePort,
		Policy:           policy,
		ResumeSchemaPath: schemas.ResolveSchemaPath(schemas.ResumeSchema),
		JDSchemaPath:     schemas.ResolveSchemaPath(schemas.JobDescriptionSchema),
	})
	return srv.Start()
}
