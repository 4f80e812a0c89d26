// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	require := require.New(t)
	homeDir, err := os.UserHomeDir()
	require.NoError(err)

	require.Equal("/tmp/config.json", ExpandHome("/tmp/config.json"))
	require.Equal("config.json", ExpandHome("config.json"))
	require.Equal(filepath.Join(homeDir, ".hardhat-cli", "config.json"), ExpandHome("~/.hardhat-cli/config.json"))
	require.Equal(homeDir, ExpandHome(""))
}

func TestFileAndDirectoryExists(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")

	require.True(DirectoryExists(dir))
	require.False(FileExists(dir))
	require.False(FileExists(file))

	require.NoError(os.WriteFile(file, []byte("{}"), 0o600))
	require.True(FileExists(file))
	require.False(DirectoryExists(file))
	require.False(DirectoryExists(filepath.Join(dir, "missing")))
}
