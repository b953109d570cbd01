package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vzhuk/gomines/game"
	"github.com/vzhuk/gomines/ui"
)

var log = logrus.StandardLogger()

// boardParams is the resolved board geometry: built-in defaults,
// overlaid by the config file, overlaid by positional arguments.
type boardParams struct {
	rows, cols, mines int
}

var defaultParams = boardParams{
	rows:  game.DefaultRows,
	cols:  game.DefaultCols,
	mines: game.DefaultMines,
}

var (
	configPath string
	layoutPath string
	logFile    string
	seed       uint64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gomines [rows cols mines]",
	Short: "Classic Minesweeper in a pixel-drawn window",
	Long: `gomines is a windowed Minesweeper. Left click reveals a cell, right
click plants or removes a flag, and the face button (or R/Enter) starts
a new game. Mines are only placed after the first reveal, so the first
click never blows up.

Board geometry comes from three optional positional arguments:

	gomines            10x10 board with 15 mines
	gomines 16 30 99   16 rows, 30 columns, 99 mines

Invalid arguments are reported and the defaults used instead.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		params := defaultParams
		if configPath != "" {
			cfg, err := loadConfigFile(configPath)
			if err != nil {
				log.Fatal(err)
			}
			if merged := cfg.apply(params); merged.valid() {
				params = merged
			} else {
				log.Warnf("config %s asks for an impossible board; using %s", configPath, params)
			}
			if seed == 0 {
				seed = cfg.Seed
			}
		}
		params = parseBoardArgs(args, params)

		uiConfig := ui.NewConfig()
		uiConfig.Rows = params.rows
		uiConfig.Cols = params.cols
		uiConfig.Mines = params.mines
		uiConfig.Seed = seed

		if layoutPath != "" {
			data, err := os.ReadFile(layoutPath)
			if err != nil {
				log.Fatal(err)
			}
			snapshot, err := game.LoadSnapshot(string(data))
			if err != nil {
				log.Fatalf("layout %s: %s", layoutPath, err)
			}
			uiConfig.Snapshot = snapshot
		}

		pixelgl.Run(func() {
			ui.Run(uiConfig)
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseBoardArgs resolves the optional positional arguments against
// the params gathered so far. Anything wrong with them, wrong count or
// not a number or out of range, keeps the board playable by falling
// back to params with a diagnostic rather than aborting.
func parseBoardArgs(args []string, params boardParams) boardParams {
	if len(args) == 0 {
		return params
	}
	if len(args) != 3 {
		log.Warnf("expected 3 positional arguments (rows cols mines), got %d; using %s", len(args), params)
		return params
	}

	values := make([]int, len(args))
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			log.Warnf("argument %q is not a number; using %s", arg, params)
			return params
		}
		values[i] = value
	}

	requested := boardParams{rows: values[0], cols: values[1], mines: values[2]}
	if !requested.valid() {
		log.Warnf("impossible board %s (need rows > 0, cols > 0, 0 <= mines < rows*cols); using %s",
			requested, params)
		return params
	}
	return requested
}

func (params boardParams) valid() bool {
	return params.rows > 0 && params.cols > 0 &&
		params.mines >= 0 && params.mines < params.rows*params.cols
}

func (params boardParams) String() string {
	return fmt.Sprintf("%dx%d with %d mines", params.rows, params.cols, params.mines)
}

func setupLogging() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatalf("cannot log to %s: %s", logFile, err)
		}
		log.AddHook(hook)
	}
}

func init() {
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Mine placement seed (0 picks a random one)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with board defaults")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML board snapshot to play instead of a random board (reset deals a fresh board)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Also write logs to this file, with rotation")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
