// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/arbitragelab/hardhat-cli/pkg/config"
	"github.com/ava-labs/avalanchego/utils/logging"
)

func NewTestApp(t *testing.T) *App {
	tempDir := t.TempDir()
	return &App{
		baseDir: tempDir,
		Log:     logging.NoLog{},
		Conf:    config.New(),
	}
}
