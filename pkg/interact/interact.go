// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package interact

import (
	"context"
	"fmt"
	"io"

	"github.com/arbitragelab/hardhat-cli/pkg/contract"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
)

const (
	connectedLinePrefix = "Conectado ao Hardhat Node:"
	ownerLinePrefix     = "Proprietário do contrato:"
)

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=../../internal/mocks/node_client.go . NodeClient

// NodeClient is the part of the evm client the owner flow depends on
type NodeClient interface {
	bind.ContractCaller
	IsConnected(ctx context.Context) bool
}

// FormatBool renders liveness the way the status line expects it
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Run prints the node liveness, then reads and prints the owner of the
// Ownable contract at [contractAddress]. If the call fails the owner line
// is not printed and the error is returned.
func Run(
	ctx context.Context,
	w io.Writer,
	client NodeClient,
	contractAddress common.Address,
) error {
	connected := client.IsConnected(ctx)
	if _, err := fmt.Fprintf(w, "%s %s\n", connectedLinePrefix, FormatBool(connected)); err != nil {
		return err
	}
	owner, err := contract.GetContractOwner(ctx, client, contractAddress)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\n", ownerLinePrefix, owner.Hex())
	return err
}
