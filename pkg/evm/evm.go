// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	ethereum "github.com/ava-labs/libevm"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/ethclient"
	"github.com/ava-labs/libevm/rpc"
)

const defaultScheme = "http://"

// used to mock the connection function
var rpcDialContext = rpc.DialContext

// wraps over ethclient for the read only calls used by the cli. features:
// - adds an http scheme to urls that lack one
// - logs rpc url in case of failure
// - single attempt per call, failures are surfaced to the caller
// - implements bind.ContractCaller so it can back contract bindings
type Client struct {
	EthClient *ethclient.Client
	RPCClient *rpc.Client
	URL       string
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// returns [rpcURL] with an http scheme if it had none
func NormalizeURL(rpcURL string) (string, error) {
	rpcURL = strings.TrimSpace(rpcURL)
	if rpcURL == "" {
		return "", fmt.Errorf("empty rpc url")
	}
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return "", fmt.Errorf("failure determining the scheme of url %s: %w", rpcURL, err)
	}
	if !hasScheme {
		rpcURL = defaultScheme + rpcURL
		if _, err := url.Parse(rpcURL); err != nil {
			return "", fmt.Errorf("invalid rpc url %s: %w", rpcURL, err)
		}
	}
	return rpcURL, nil
}

// connects an evm client to the given [rpcURL]
// for http endpoints no request is made until the first call
func GetClient(ctx context.Context, rpcURL string) (Client, error) {
	client := Client{
		URL: rpcURL,
	}
	normalizedURL, err := NormalizeURL(rpcURL)
	if err != nil {
		return client, err
	}
	client.URL = normalizedURL
	client.RPCClient, err = rpcDialContext(ctx, normalizedURL)
	if err != nil {
		return client, fmt.Errorf("failure connecting to %s: %w", normalizedURL, err)
	}
	client.EthClient = ethclient.NewClient(client.RPCClient)
	return client, nil
}

// closes underlying rpc connection
func (client Client) Close() {
	if client.RPCClient != nil {
		client.RPCClient.Close()
	}
}

// indicates whether the node answers a basic liveness probe
// never fails, an unreachable or misbehaving node reports false
func (client Client) IsConnected(ctx context.Context) bool {
	_, err := client.ClientVersion(ctx)
	return err == nil
}

// returns the node client version (web3_clientVersion)
func (client Client) ClientVersion(ctx context.Context) (string, error) {
	var version string
	if err := client.RPCClient.CallContext(ctx, &version, "web3_clientVersion"); err != nil {
		return "", fmt.Errorf("failure obtaining client version from %s: %w", client.URL, err)
	}
	return version, nil
}

// returns the chain ID
func (client Client) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := client.EthClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failure getting chain id from %s: %w", client.URL, err)
	}
	return chainID, nil
}

// gets current height
func (client Client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := client.EthClient.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failure obtaining block number from %s: %w", client.URL, err)
	}
	return blockNumber, nil
}

// returns the contract bytecode at [contractAddress]
func (client Client) CodeAt(
	ctx context.Context,
	contractAddress common.Address,
	blockNumber *big.Int,
) ([]byte, error) {
	code, err := client.EthClient.CodeAt(ctx, contractAddress, blockNumber)
	if err != nil {
		return nil, fmt.Errorf(
			"failure obtaining code from %s at address %s: %w",
			client.URL,
			contractAddress.Hex(),
			err,
		)
	}
	return code, nil
}

// executes a read only message call
func (client Client) CallContract(
	ctx context.Context,
	msg ethereum.CallMsg,
	blockNumber *big.Int,
) ([]byte, error) {
	out, err := client.EthClient.CallContract(ctx, msg, blockNumber)
	if err != nil {
		to := "<nil>"
		if msg.To != nil {
			to = msg.To.Hex()
		}
		return nil, fmt.Errorf("failure calling contract %s on %s: %w", to, client.URL, err)
	}
	return out, nil
}
