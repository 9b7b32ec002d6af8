package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file search order is --config, ~/.tetris/configs/tetris.yaml,
./configs/tetris.yaml, then the built-in default. The difficulty is
recorded as difficulty.preset; timing is printed unscaled, so the
output can be saved and loaded again unchanged.

Use --default to print the built-in file instead, as a starting point
for a custom configuration.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --default > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefault bool

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
