// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arbitragelab/hardhat-cli/cmd/configcmd"
	"github.com/arbitragelab/hardhat-cli/cmd/contractcmd"
	"github.com/arbitragelab/hardhat-cli/cmd/dexcmd"
	"github.com/arbitragelab/hardhat-cli/cmd/flags"
	"github.com/arbitragelab/hardhat-cli/cmd/nodecmd"
	"github.com/arbitragelab/hardhat-cli/cmd/tokencmd"
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/config"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	app *application.App

	logLevel   string
	configFile string

	logFactory logging.Factory

	Version = ""
)

// NewRootCmd builds the hardhat-cli command tree. Called with no sub command
// it reports the node connectivity and the owner of the configured contract.
func NewRootCmd() *cobra.Command {
	app = application.New()
	conf := config.New()
	rootCmd := &cobra.Command{
		Use: "hardhat-cli",
		Long: `Hardhat CLI is a command line tool to inspect contracts deployed on a
local Hardhat node.

Run without a sub command, it checks the node answers and prints the owner
of the configured Ownable contract. The contract, token, dex and node
command suites give read only access to everything else.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return createApp(cmd, conf)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			closeLogs()
		},
		RunE:    printOwner,
		Args:    cobrautils.ExactArgs(0),
		Version: Version,
	}
	cobrautils.ConfigureRootCmd(rootCmd)
	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.hardhat-cli/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevelKey, constants.DefaultLogLevel, "log level for the application")
	if err := conf.BindFlag(constants.ConfigLogLevelKey, rootCmd.PersistentFlags().Lookup(constants.ConfigLogLevelKey)); err != nil {
		panic(err)
	}
	if err := flags.AddNodeFlagsToCmd(rootCmd, conf); err != nil {
		panic(err)
	}

	// add sub commands
	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(tokencmd.NewCmd(app))
	rootCmd.AddCommand(dexcmd.NewCmd(app))
	rootCmd.AddCommand(nodecmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))
	return rootCmd
}

func printOwner(_ *cobra.Command, _ []string) error {
	return contractcmd.PrintOwner(app, "")
}

func createApp(cmd *cobra.Command, conf *config.Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("unable to get system user: %w", err)
	}
	app.Setup(filepath.Join(home, constants.BaseDirName), logging.NoLog{}, conf)
	if err := app.CreateBaseDir(); err != nil {
		return err
	}
	if configFile == "" {
		configFile = app.GetDefaultConfigPath()
	} else {
		configFile = utils.ExpandHome(configFile)
	}
	// the config file may carry the log level, so read it before logging exists
	if err := conf.SetConfig(app.Log, configFile); err != nil {
		return err
	}
	log, err := setupLogging(app.GetLogDir(), conf.GetLogLevel())
	if err != nil {
		return err
	}
	app.Setup(app.GetBaseDir(), log, conf)
	// create the user facing logger as a global var
	ux.NewUserLog(log, cmd.OutOrStdout())
	log.Info("command started",
		zap.String("command", cmd.CommandPath()),
		zap.String("config-file", configFile),
		zap.Bool("config-file-exists", conf.ConfigFileExists()),
	)
	return nil
}

func setupLogging(logDir string, level string) (logging.Logger, error) {
	var err error

	logConfig := logging.Config{}
	logConfig.LogLevel = logging.Info
	logConfig.DisplayLevel, err = logging.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", level)
	}
	logConfig.Directory = logDir
	if err := os.MkdirAll(logConfig.Directory, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	logConfig.LogFormat = logging.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	factory := logging.NewFactory(logConfig)
	log, err := factory.Make(constants.LoggerName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	closeLogs()
	logFactory = factory
	return log, nil
}

func closeLogs() {
	if logFactory != nil {
		logFactory.Close()
		logFactory = nil
	}
}

// Execute runs the root command, exiting with a non zero status on failure.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	cobrautils.HandleErrors(rootCmd.Execute())
}
