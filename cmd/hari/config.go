package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hari/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying the search order:
--config, ~/.hari/configs/seagull.yaml, ./configs/seagull.yaml, then the
built-in defaults.

The output is a complete config file and can be used as a starting point:
  hari config > ~/.hari/configs/seagull.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
