// ABOUTME: Standard filesystem paths for imgascii configuration
// ABOUTME: Resolves ~/.imgascii/ for global and .imgascii.yaml for project-local files

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName   = ".imgascii"
	projectFileName = ".imgascii.yaml"
)

// GlobalDir returns the user-global config directory (~/.imgascii/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectFileName)
}
