// Copyright 2025 Raamsri Kumar <raam@tinkershack.in>
// Copyright 2025 The StrataSTOR Authors and Contributors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

var configDir string // Directory for configuration files

func init() {
	if os.Geteuid() == 0 {
		configDir = "/etc/nimbus"
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".nimbus")
}

// GetConfigDir returns the directory holding nimbus.yml.
func GetConfigDir() string {
	return configDir
}
