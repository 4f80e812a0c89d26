// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/arbitragelab/hardhat-cli/pkg/application"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/interact"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/ava-labs/libevm/common"
	"github.com/spf13/cobra"
)

// hardhat-cli contract owner
func newOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner [contractAddress]",
		Short: "Print the owner of an Ownable contract",
		Long: `The contract owner command checks the node answers and then prints the
owner of the Ownable contract at the given address, or at the configured
contract address if none is given.`,
		RunE: owner,
		Args: cobrautils.MaximumNArgs(1),
	}
}

func owner(_ *cobra.Command, args []string) error {
	contractAddress := ""
	if len(args) > 0 {
		contractAddress = args[0]
	}
	return PrintOwner(app, contractAddress)
}

// PrintOwner connects to the configured node and prints its liveness and the
// owner of [contractAddress]. An empty [contractAddress] uses the configured one.
func PrintOwner(app *application.App, contractAddress string) error {
	var (
		address common.Address
		err     error
	)
	if contractAddress == "" {
		address, err = app.GetContractAddress()
	} else {
		address, err = evm.ParseAddress(contractAddress)
	}
	if err != nil {
		return err
	}
	ctx, cancel := app.GetAPIContext()
	defer cancel()
	client, err := app.GetNodeClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	return interact.Run(ctx, ux.Logger, client, address)
}
