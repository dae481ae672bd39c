package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration a game would start with, after the config
search order, difficulty preset and start level are applied.

Config search order:
  --config <path>
  ~/.tetris/configs/tetris.yaml
  ./configs/tetris.yaml
  built-in defaults (tetris config --defaults)`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (1-15, overrides the preset)")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	// Starting point for a custom config file.
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML(tetris.ID)))
		return nil
	}

	if _, err := applyGameFlags(); err != nil {
		return err
	}

	cfg, err := tetris.LoadConfig()
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
