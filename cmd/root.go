package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lorewiki",
	Short: "Turn simulated world state into a cross-referenced encyclopedia",
	Long: `Lorewiki reads the raw state of a simulated world (entities,
relationships, narrative history) plus authored chronicles and articles,
and computes a navigable wiki corpus on demand: a lightweight page index
for search and navigation, with fully cross-referenced pages synthesized
lazily and never persisted.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".lorewiki.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
