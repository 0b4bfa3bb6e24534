package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables consulted when locating the configuration file.
const (
	HomeEnvVar   = "LSF_HOME"
	ConfigEnvVar = "LSF_CONFIG"
)

// GetHome returns the lsf home directory
// Priority order:
//  1. LSF_HOME environment variable (if set)
//  2. <user config dir>/lsf
//
// The directory is not created; lsf only reads from it.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(dir, "lsf"), nil
}

// ResolvePath picks the configuration file: an explicit path wins, then
// LSF_CONFIG, then config.yaml inside the lsf home.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}
