// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"fmt"

	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/contract"
	"github.com/arbitragelab/hardhat-cli/pkg/evm"
	"github.com/arbitragelab/hardhat-cli/pkg/ux"
	"github.com/spf13/cobra"
)

var callContractAddress string

// hardhat-cli contract call
func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call [methodSpec] [args...]",
		Short: "Call a read only method of a contract",
		Long: `The contract call command invokes a view method of a contract and prints
its outputs, one per line.

The method is described as name(inputTypes)->(outputTypes), for example
'balanceOf(address)->(uint256)' or 'owner()->(address)'. Arguments are
given after the method and parsed according to the input types.`,
		RunE: callContract,
		Args: cobrautils.MinimumNArgs(1),
	}
	cmd.Flags().StringVar(&callContractAddress, "address", "", "contract address (defaults to the configured contract address)")
	return cmd
}

func callContract(_ *cobra.Command, args []string) error {
	methodEsp := args[0]
	address, err := app.GetContractAddress()
	if callContractAddress != "" {
		address, err = evm.ParseAddress(callContractAddress)
	}
	if err != nil {
		return err
	}
	methodName, methodABI, err := contract.ParseMethodEsp(methodEsp, true)
	if err != nil {
		return err
	}
	parsedABI, err := contract.ParseABI(methodABI)
	if err != nil {
		return err
	}
	params, err := contract.ParseCallArgs(parsedABI.Methods[methodName].Inputs, args[1:])
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
	out, err := contract.CallWithABI(ctx, client, address, methodABI, methodName, params...)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		ux.Logger.PrintToUser("%s returned no outputs", methodName)
		return nil
	}
	for i, value := range out {
		ux.Logger.PrintToUser("%s", formatOutput(i, len(out), value))
	}
	return nil
}

func formatOutput(i int, n int, value interface{}) string {
	if n == 1 {
		return contract.FormatValue(value)
	}
	return fmt.Sprintf("[%d] %s", i, contract.FormatValue(value))
}
