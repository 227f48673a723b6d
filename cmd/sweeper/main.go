package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sweeper/cmd/sweeper/play"
	"sweeper/internal/config"
	"sweeper/internal/game"
	"sweeper/internal/logging"
)

// Version is stamped by the build.
var Version = "dev"

var (
	// Global flags
	configPath string
	preset     string
	rows       int
	cols       int
	mines      int
	seed       int64
	debug      bool

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd launches the interactive game.
var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "sweeper - minesweeper in the terminal",
	Long: `Sweeper is a terminal minesweeper.

Run without arguments for the interactive game, then type start to play.
The first reveal is always safe; mines are placed after it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if debug {
			cfg.Logging.Debug = true
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		startPreset := preset
		if rows > 0 || cols > 0 || mines > 0 {
			// Explicit dimensions validate through the same path as the
			// in-game start command, so fail early here.
			limit := rows*cols - 9
			if rows < cfg.Board.MinSize || rows > cfg.Board.MaxSize ||
				cols < cfg.Board.MinSize || cols > cfg.Board.MaxSize {
				return fmt.Errorf("rows and columns have to be between %d and %d", cfg.Board.MinSize, cfg.Board.MaxSize)
			}
			if mines < 1 || mines > limit {
				return fmt.Errorf("mines have to be between 1 and %d", limit)
			}
		} else if startPreset != "" {
			if _, ok := game.PresetByName(startPreset); !ok {
				return fmt.Errorf("unknown difficulty %q: choose easy, normal or hard", startPreset)
			}
		}

		return play.Run(play.Config{
			Config: cfg,
			Logger: logger,
			Seed:   seed,
			Preset: startPreset,
			Rows:   rows,
			Cols:   cols,
			Mines:  mines,
		})
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sweeper version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sweeper %s\n", Version)
	},
}

// configCmd groups configuration management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sweeper configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("config file:    %s\n", configPath)
		fmt.Printf("theme:          %s\n", cfg.Theme)
		fmt.Printf("default preset: %s\n", cfg.DefaultPreset)
		fmt.Printf("board range:    %d..%d\n", cfg.Board.MinSize, cfg.Board.MaxSize)
		fmt.Printf("debug log:      %v (%s)\n", cfg.Logging.Debug, cfg.Logging.File)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file already exists at %s", configPath)
		}
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configPath)
		return nil
	},
}

var configSetThemeCmd = &cobra.Command{
	Use:   "set-theme [light|dark]",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Theme = args[0]
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Printf("theme set to %s\n", args[0])
		return nil
	},
}

// presetsCmd lists the difficulty presets.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the difficulty presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range game.Presets {
			fmt.Printf("%-8s %2dx%-2d  %d mines\n", p.Name, p.Rows, p.Cols, p.Mines)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log")

	rootCmd.Flags().StringVar(&preset, "preset", "", "start immediately at a difficulty (easy, normal, hard)")
	rootCmd.Flags().IntVar(&rows, "rows", 0, "start immediately with this many rows")
	rootCmd.Flags().IntVar(&cols, "cols", 0, "start immediately with this many columns")
	rootCmd.Flags().IntVar(&mines, "mines", 0, "start immediately with this many mines")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "fix the mine placement seed (0 picks a random one)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetThemeCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
