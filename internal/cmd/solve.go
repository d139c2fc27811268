package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/spellingbee/internal/config"
	"github.com/harrison/spellingbee/internal/display"
	"github.com/harrison/spellingbee/internal/logger"
	"github.com/harrison/spellingbee/internal/puzzle"
	"github.com/harrison/spellingbee/internal/solver"
	"github.com/harrison/spellingbee/internal/wordlist"
)

// runSolveCommand implements the root command logic
func runSolveCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// The letter count is checked before anything else so a bad board never
	// touches the config file or the dictionary.
	letters, err := puzzle.NewLetterSet(args)
	if errors.Is(err, puzzle.ErrLetterCount) {
		display.LetterCountError().Display(errOut, isTerminal(errOut))
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	layout := display.Layout{
		Columns:   cfg.Columns,
		Emphasize: shouldEmphasize(cfg.Emphasis, out),
	}
	log.LogInfo(fmt.Sprintf("Solving %s with %s (%s), %d columns, emphasis %s (%t)",
		letters, cfg.Dictionary, cfg.Encoding, cfg.Columns, cfg.Emphasis, layout.Emphasize))

	return solve(letters, cfg.Dictionary, cfg.Encoding, layout, out, log)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		var err error
		configPath, err = config.DefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	// Build flag pointers for merge (only flags the user actually set)
	var dictionaryPtr, encodingPtr, columnsPtr, emphasisPtr, logLevelPtr *string
	if cmd.Flags().Changed("dictionary") {
		v, _ := cmd.Flags().GetString("dictionary")
		dictionaryPtr = &v
	}
	if cmd.Flags().Changed("encoding") {
		v, _ := cmd.Flags().GetString("encoding")
		encodingPtr = &v
	}
	if cmd.Flags().Changed("columns") {
		v, _ := cmd.Flags().GetString("columns")
		columnsPtr = &v
	}
	if cmd.Flags().Changed("emphasis") {
		v, _ := cmd.Flags().GetString("emphasis")
		emphasisPtr = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}

	cfg.MergeWithFlags(dictionaryPtr, encodingPtr, columnsPtr, emphasisPtr, logLevelPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// solve scans the dictionary at path and writes the laid-out answers to out.
// Nothing is written to out if the dictionary cannot be opened.
func solve(letters *puzzle.LetterSet, path, encoding string, layout display.Layout, out io.Writer, log logger.Logger) error {
	src, err := wordlist.Open(path, encoding)
	if err != nil {
		return err
	}
	defer src.Close()

	start := time.Now()
	res := solver.Solve(src, letters)
	stats := src.Stats()

	if stats.ReadErr != nil {
		log.LogWarn(fmt.Sprintf("Stopped reading %s early: %v", src.Name(), stats.ReadErr))
	}
	log.LogScanSummary(logger.ScanSummary{
		Dictionary: src.Name(),
		Letters:    letters.String(),
		Lines:      stats.Lines,
		Skipped:    stats.Skipped,
		Accepted:   res.Total(),
		Pangrams:   len(res.Pangrams),
		Duration:   time.Since(start),
	})
	for _, e := range res.Entries() {
		if e.Pangram {
			log.LogTrace("Accepted pangram " + e.Word)
		} else {
			log.LogTrace("Accepted " + e.Word)
		}
	}

	return layout.WriteResult(out, res)
}
