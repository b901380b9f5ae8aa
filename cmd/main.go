package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "news-aggregator",
	Short: "A CLI for managing the news aggregator services",
	Long:  `News Aggregator collects articles from outlet sitemaps and feeds, extracts facts and serves the aggregated store over a REST API.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
