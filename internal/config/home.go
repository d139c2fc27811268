package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config file location.
const (
	DirName  = ".spellingbee"
	FileName = "config.yaml"
	// HomeEnv names a directory holding config.yaml, overriding the working directory
	HomeEnv = "SPELLINGBEE_HOME"
)

// DefaultConfigPath returns the config file to read when --config is not given.
// Priority order:
//  1. $SPELLINGBEE_HOME/config.yaml (if the variable is set)
//  2. ./.spellingbee/config.yaml
//
// Nothing is created; a missing file just means defaults.
func DefaultConfigPath() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return filepath.Join(home, FileName), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, DirName, FileName), nil
}
