// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/pkg/config"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/spf13/cobra"
)

// AddNodeFlagsToCmd adds the persistent node connection flags to [cmd] and
// binds them to their configuration keys, so that a flag given on the command
// line takes precedence over the environment and the config file
func AddNodeFlagsToCmd(cmd *cobra.Command, conf *config.Config) error {
	cmd.PersistentFlags().String(
		constants.ConfigRPCURLKey,
		constants.DefaultRPCURL,
		"JSON-RPC endpoint of the node",
	)
	cmd.PersistentFlags().String(
		constants.ConfigContractAddressKey,
		constants.DefaultContractAddress,
		"address of the Ownable contract",
	)
	cmd.PersistentFlags().Duration(
		constants.ConfigRequestTimeoutKey,
		constants.DefaultRequestTimeout,
		"deadline for node requests (0 leaves it to the transport)",
	)
	for _, key := range []string{
		constants.ConfigRPCURLKey,
		constants.ConfigContractAddressKey,
		constants.ConfigRequestTimeoutKey,
	} {
		if err := conf.BindFlag(key, cmd.PersistentFlags().Lookup(key)); err != nil {
			return fmt.Errorf("failure binding flag %s: %w", key, err)
		}
	}
	return nil
}
