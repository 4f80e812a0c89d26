// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"io"
	"testing"

	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(logging.NoLog{}, io.Discard)
	return require.New(t)
}

// SetupTestWithOutput captures everything printed to the user
func SetupTestWithOutput(t *testing.T) (*require.Assertions, *bytes.Buffer) {
	out := &bytes.Buffer{}
	ux.NewUserLog(logging.NoLog{}, out)
	return require.New(t), out
}

// SetupTestHome points the home directory at a temporary one, so the base
// dir, logs and config file of the cli are created there
func SetupTestHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}
