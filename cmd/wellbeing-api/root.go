package main

import (
	"fmt"
	"os"
	// Zone data for hosts without a system zoneinfo database
	_ "time/tzdata"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wellbeing-api",
	Short: "Wellbeing analytics server",
	Long:  `A REST API and command line tool for mood trends and mood/task correlations.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
}

func main() {
	Execute()
}
