// Package main provides the resume_parser command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume text extraction and structured field parser",
	Long: `resume_parser reads resumes from PDF, DOCX, HTML or plain text files and URLs,
extracts the contact details, experience, education, skills, projects and
certifications into a structured record, and reports what was and was not found.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
