// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"errors"
	"fmt"
	"math/big"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/rpc"
	"github.com/stretchr/testify/require"
)

const (
	NodeClientVersion = "HardhatNetwork/2.22.0/@ethereumjs/vm/7.0.0"
	NodeChainID       = 31337
)

// deployed code only needs to be non empty for bindings to accept it
var dummyCode = []byte{0x60, 0x80, 0x60, 0x40, 0x52}

var ErrExecutionReverted = errors.New("execution reverted")

// FakeContract holds the canned answers of a contract deployed on a FakeNode,
// keyed by the hex encoded calldata
type FakeContract struct {
	Code    []byte
	results map[string][]byte
	reverts map[string]bool
}

// SetResult registers the outputs returned when [method] is called with [args]
func (c *FakeContract) SetResult(t testing.TB, contractABI abi.ABI, method string, args []interface{}, outputs ...interface{}) {
	input, err := contractABI.Pack(method, args...)
	require.NoError(t, err)
	output, err := contractABI.Methods[method].Outputs.Pack(outputs...)
	require.NoError(t, err)
	c.results[hexutil.Encode(input)] = output
}

// SetRawResult registers raw return data for [method], useful for malformed answers
func (c *FakeContract) SetRawResult(t testing.TB, contractABI abi.ABI, method string, args []interface{}, output []byte) {
	input, err := contractABI.Pack(method, args...)
	require.NoError(t, err)
	c.results[hexutil.Encode(input)] = output
}

// SetRevert makes calls to [method] fail as a reverted execution
func (c *FakeContract) SetRevert(t testing.TB, contractABI abi.ABI, method string, args ...interface{}) {
	input, err := contractABI.Pack(method, args...)
	require.NoError(t, err)
	c.reverts[hexutil.Encode(input)] = true
}

// FakeNode is an in process JSON-RPC endpoint answering the subset of the
// web3/eth namespaces used by the cli
type FakeNode struct {
	URL       string
	server    *httptest.Server
	contracts map[common.Address]*FakeContract
	block     uint64
}

type callArgs struct {
	From  *common.Address `json:"from"`
	To    *common.Address `json:"to"`
	Input hexutil.Bytes   `json:"input"`
	Data  hexutil.Bytes   `json:"data"`
}

type web3API struct{}

func (web3API) ClientVersion() string {
	return NodeClientVersion
}

type ethAPI struct {
	node *FakeNode
}

func (api *ethAPI) ChainId() *hexutil.Big { //nolint:stylecheck
	return (*hexutil.Big)(big.NewInt(NodeChainID))
}

func (api *ethAPI) BlockNumber() hexutil.Uint64 {
	return hexutil.Uint64(api.node.block)
}

func (api *ethAPI) GetCode(address common.Address, _ string) (hexutil.Bytes, error) {
	if contract, ok := api.node.contracts[address]; ok {
		return contract.Code, nil
	}
	return hexutil.Bytes{}, nil
}

func (api *ethAPI) Call(args callArgs, _ string) (hexutil.Bytes, error) {
	if args.To == nil {
		return nil, fmt.Errorf("contract creation is not supported")
	}
	contract, ok := api.node.contracts[*args.To]
	if !ok {
		// calling an account without code succeeds with empty output
		return hexutil.Bytes{}, nil
	}
	input := args.Input
	if len(input) == 0 {
		input = args.Data
	}
	key := hexutil.Encode(input)
	if contract.reverts[key] {
		return nil, ErrExecutionReverted
	}
	output, ok := contract.results[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown function selector", ErrExecutionReverted)
	}
	return output, nil
}

// NewFakeNode starts a node that is stopped when the test ends
func NewFakeNode(t testing.TB) *FakeNode {
	node := &FakeNode{
		contracts: map[common.Address]*FakeContract{},
		block:     1,
	}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("web3", web3API{}))
	require.NoError(t, server.RegisterName("eth", &ethAPI{node: node}))
	node.server = httptest.NewServer(server)
	node.URL = node.server.URL
	t.Cleanup(func() {
		node.server.Close()
		server.Stop()
	})
	return node
}

// Deploy registers a contract at [address]
func (n *FakeNode) Deploy(address common.Address) *FakeContract {
	contract := &FakeContract{
		Code:    dummyCode,
		results: map[string][]byte{},
		reverts: map[string]bool{},
	}
	n.contracts[address] = contract
	return contract
}

// SetBlockNumber sets the height reported by eth_blockNumber
func (n *FakeNode) SetBlockNumber(block uint64) {
	n.block = block
}

// UnreachableURL returns an http url nobody listens on
func UnreachableURL(t testing.TB) string {
	server := httptest.NewServer(nil)
	url := server.URL
	server.Close()
	return url
}
