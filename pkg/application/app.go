// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbitragelab/hardhat-cli/pkg/config"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/libevm/common"
	"go.uber.org/zap"
)

type App struct {
	Log     logging.Logger
	baseDir string
	Conf    *config.Config
}

func New() *App {
	return &App{}
}

func (app *App) Setup(baseDir string, log logging.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *App) GetBaseDir() string {
	return app.baseDir
}

func (app *App) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetDefaultConfigPath is the config file used when --config is not given
func (app *App) GetDefaultConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *App) CreateBaseDir() error {
	if err := os.MkdirAll(app.baseDir, constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating the basedir %s: %w", app.baseDir, err)
	}
	return nil
}

// GetRPCURL is the configured node endpoint, normalized to carry a scheme
func (app *App) GetRPCURL() (string, error) {
	return evm.NormalizeURL(app.Conf.GetRPCURL())
}

// GetContractAddress is the configured address of the ownable contract
func (app *App) GetContractAddress() (common.Address, error) {
	return evm.ParseAddress(app.Conf.GetContractAddress())
}

// GetAPIContext returns a context bounded by the configured request timeout
func (app *App) GetAPIContext() (context.Context, context.CancelFunc) {
	return utils.GetAPIContext(app.Conf.GetRequestTimeout())
}

// GetNodeClient dials the configured endpoint
func (app *App) GetNodeClient(ctx context.Context) (evm.Client, error) {
	rpcURL, err := app.GetRPCURL()
	if err != nil {
		return evm.Client{}, err
	}
	app.Log.Info("connecting to node", zap.String("rpc-url", rpcURL))
	return evm.GetClient(ctx, rpcURL)
}
