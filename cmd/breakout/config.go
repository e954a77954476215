package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration as YAML after applying the config file search
order, --difficulty and --fps. Redirect it to a file to start a custom config.

Search order:
  --config <path>
  ~/.breakout/breakout.yaml
  ./configs/breakout.yaml
  built-in defaults

Examples:
  breakout config
  breakout config --difficulty hard
  breakout config --default > ~/.breakout/breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, _, err := gameSettings()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
