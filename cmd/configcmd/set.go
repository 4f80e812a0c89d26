// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
)

// hardhat-cli config set
func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Persist a configuration value",
		Long: `The config set command validates and writes a value into the config file.

Known keys: ` + strings.Join([]string{
			constants.ConfigContractAddressKey,
			constants.ConfigLogLevelKey,
			constants.ConfigRequestTimeoutKey,
			constants.ConfigRPCURLKey,
		}, ", "),
		RunE: set,
		Args: cobrautils.ExactArgs(2),
	}
}

func set(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !app.Conf.IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q, expected one of %s", key, strings.Join(app.Conf.Keys(), ", "))
	}
	if err := validateValue(key, value); err != nil {
		return err
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return err
	}
	ux.Logger.PrintToUser("%s set to %s in %s", key, value, app.Conf.GetConfigPath())
	return nil
}

func validateValue(key string, value string) error {
	var err error
	switch key {
	case constants.ConfigRPCURLKey:
		_, err = evm.NormalizeURL(value)
	case constants.ConfigContractAddressKey:
		_, err = evm.ParseAddress(value)
	case constants.ConfigRequestTimeoutKey:
		_, err = time.ParseDuration(value)
	case constants.ConfigLogLevelKey:
		_, err = logging.ToLevel(value)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
