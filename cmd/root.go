package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mfaulds/weekplan/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "weekplan",
	Short: "Weekly one-on-one and team session planner",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (json or yaml)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
