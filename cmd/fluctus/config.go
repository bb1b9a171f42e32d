package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fluctus/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration FLUCTUS would run with, after the search path
and --difficulty preset are applied. Use the output as a starting point for
~/.fluctus/configs/fluctus.yaml or a --config file.

Examples:
  fluctus config
  fluctus config --difficulty hard
  fluctus config --defaults > my-fluctus.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagShowDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
