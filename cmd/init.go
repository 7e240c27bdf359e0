package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chris-arsenault/lorewiki/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lorewiki configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure lorewiki for your world and generates a .lorewiki.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
