// Package main provides the resume_studio CLI: it manages the local résumé
// collection, renders documents in any template and serves a preview API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Résumé collection manager and template renderer",
	Long: "resume_studio keeps a collection of résumé documents in a local slot store, " +
		"renders them in ten visual templates with light and dark palettes, and exports HTML and PDF.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (optional)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
