// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/arbitragelab/hardhat-cli/internal/testutils"
	"github.com/arbitragelab/hardhat-cli/pkg/cobrautils"
	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/contract"
	"github.com/arbitragelab/hardhat-cli/pkg/dex"
	"github.com/arbitragelab/hardhat-cli/pkg/token"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/ava-labs/libevm/accounts/abi/bind"
	"github.com/ava-labs/libevm/common"
	"github.com/stretchr/testify/require"
)

var (
	ownerAddress   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	defaultAddress = common.HexToAddress(constants.DefaultContractAddress)
)

func execute(t *testing.T, args ...string) (string, error) {
	testutils.SetupTestHome(t)
	out := &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newOwnableNode(t *testing.T, contractAddress common.Address) *testutils.FakeNode {
	ownable, err := contract.ParseABI(contract.OwnableABI)
	require.NoError(t, err)
	node := testutils.NewFakeNode(t)
	node.Deploy(contractAddress).SetResult(t, ownable, "owner", nil, ownerAddress)
	return node
}

func TestDefaultFlow(t *testing.T) {
	t.Run("live node", func(t *testing.T) {
		node := newOwnableNode(t, defaultAddress)
		out, err := execute(t, "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Equal(t,
			"Conectado ao Hardhat Node: True\n"+
				"Proprietário do contrato: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266\n",
			out,
		)
	})

	t.Run("unreachable node", func(t *testing.T) {
		out, err := execute(t, "--rpc-url", testutils.UnreachableURL(t))
		require.Error(t, err)
		require.Equal(t, "Conectado ao Hardhat Node: False\n", out)
	})

	t.Run("no contract at address", func(t *testing.T) {
		node := testutils.NewFakeNode(t)
		out, err := execute(t, "--rpc-url", node.URL)
		require.ErrorIs(t, err, bind.ErrNoCode)
		require.Equal(t, "Conectado ao Hardhat Node: True\n", out)
	})

	t.Run("environment", func(t *testing.T) {
		contractAddress := common.HexToAddress("0x0165878A594ca255338adfa4d48449f69242Eb8F")
		node := newOwnableNode(t, contractAddress)
		t.Setenv("HARDHAT_CLI_RPC_URL", node.URL)
		t.Setenv("HARDHAT_CLI_CONTRACT_ADDRESS", contractAddress.Hex())
		out, err := execute(t)
		require.NoError(t, err)
		require.Contains(t, out, "Proprietário do contrato: "+ownerAddress.Hex())
	})

	t.Run("config file", func(t *testing.T) {
		contractAddress := common.HexToAddress("0x0165878A594ca255338adfa4d48449f69242Eb8F")
		node := newOwnableNode(t, contractAddress)
		configPath := filepath.Join(t.TempDir(), "hardhat.json")
		content := `{"rpc-url": "` + node.URL + `", "contract-address": "` + contractAddress.Hex() + `"}`
		require.NoError(t, os.WriteFile(configPath, []byte(content), constants.WriteReadReadPerms))
		out, err := execute(t, "--config", configPath)
		require.NoError(t, err)
		require.Contains(t, out, "Conectado ao Hardhat Node: True\n")
		require.Contains(t, out, "Proprietário do contrato: "+ownerAddress.Hex())
	})

	t.Run("invalid contract address", func(t *testing.T) {
		_, err := execute(t, "--contract-address", "0x1234")
		require.ErrorIs(t, err, constants.ErrInvalidAddress)
	})

	t.Run("unexpected argument", func(t *testing.T) {
		_, err := execute(t, "bogus")
		var usageErr cobrautils.UsageError
		require.ErrorAs(t, err, &usageErr)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := execute(t, "--log-level", "loud")
		require.ErrorContains(t, err, "invalid log level")
	})
}

func TestSetupCreatesBaseDir(t *testing.T) {
	node := newOwnableNode(t, defaultAddress)
	_, err := execute(t, "--rpc-url", node.URL)
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.True(t, utils.DirectoryExists(filepath.Join(home, constants.BaseDirName, constants.LogDir)))
}

func TestContractCommands(t *testing.T) {
	contractAddress := common.HexToAddress("0x0165878A594ca255338adfa4d48449f69242Eb8F")
	node := newOwnableNode(t, contractAddress)
	erc20, err := contract.ParseABI(token.ERC20QueryABI)
	require.NoError(t, err)
	tokenAddress := common.HexToAddress("0xa513E6E4b8f2a923D98304ec87F64353C4D5C853")
	node.Deploy(tokenAddress).SetResult(t, erc20, "balanceOf", []interface{}{ownerAddress}, big.NewInt(42))

	t.Run("owner", func(t *testing.T) {
		out, err := execute(t, "contract", "owner", contractAddress.Hex(), "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Equal(t,
			"Conectado ao Hardhat Node: True\n"+
				"Proprietário do contrato: "+ownerAddress.Hex()+"\n",
			out,
		)
	})

	t.Run("call", func(t *testing.T) {
		out, err := execute(t,
			"contract", "call", "balanceOf(address)->(uint256)", ownerAddress.Hex(),
			"--address", tokenAddress.Hex(),
			"--rpc-url", node.URL,
		)
		require.NoError(t, err)
		require.Equal(t, "42\n", out)
	})

	t.Run("call with wrong arguments", func(t *testing.T) {
		_, err := execute(t,
			"contract", "call", "balanceOf(address)->(uint256)",
			"--address", tokenAddress.Hex(),
			"--rpc-url", node.URL,
		)
		require.ErrorContains(t, err, "expected 1 arguments, got 0")
	})
}

func TestTokenCommands(t *testing.T) {
	erc20, err := contract.ParseABI(token.ERC20QueryABI)
	require.NoError(t, err)
	spender := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	tokenAddress := common.HexToAddress("0xa513E6E4b8f2a923D98304ec87F64353C4D5C853")
	node := testutils.NewFakeNode(t)
	tk := node.Deploy(tokenAddress)
	tk.SetResult(t, erc20, "name", nil, "Token A")
	tk.SetResult(t, erc20, "symbol", nil, "TKA")
	tk.SetResult(t, erc20, "decimals", nil, uint8(18))
	tk.SetResult(t, erc20, "balanceOf", []interface{}{ownerAddress}, utils.ApplyDefaultDenomination(1000))
	tk.SetResult(t, erc20, "allowance", []interface{}{ownerAddress, spender}, new(big.Int).Div(utils.ApplyDefaultDenomination(3), big.NewInt(2)))

	t.Run("info", func(t *testing.T) {
		out, err := execute(t, "token", "info", tokenAddress.Hex(), "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Contains(t, out, "Token A")
		require.Contains(t, out, "TKA")
		require.Contains(t, out, "18")
	})

	t.Run("balance", func(t *testing.T) {
		out, err := execute(t,
			"token", "balance", tokenAddress.Hex(), ownerAddress.Hex(),
			"--spender", spender.Hex(),
			"--rpc-url", node.URL,
		)
		require.NoError(t, err)
		require.Contains(t, out, "Balance of "+ownerAddress.Hex()+": 1000.0 TKA (1000000000000000000000 base units)")
		require.Contains(t, out, "Allowance of "+spender.Hex()+": 1.5 TKA (1500000000000000000 base units)")
	})

	t.Run("invalid account", func(t *testing.T) {
		_, err := execute(t, "token", "balance", tokenAddress.Hex(), "alice", "--rpc-url", node.URL)
		require.ErrorIs(t, err, constants.ErrInvalidAddress)
	})
}

func TestDexCommands(t *testing.T) {
	dexABI, err := contract.ParseABI(dex.SimpleDEXABI)
	require.NoError(t, err)
	erc20, err := contract.ParseABI(token.ERC20QueryABI)
	require.NoError(t, err)
	addrs, err := testutils.GenerateEthAddrs(4)
	require.NoError(t, err)
	dex1, dex2, dex3, tokenA := addrs[0], addrs[1], addrs[2], addrs[3]

	node := testutils.NewFakeNode(t)
	for _, pool := range []struct {
		address  common.Address
		reserveA int64
		reserveB int64
	}{
		{dex1, 1000000, 1000000},
		{dex2, 1200000, 1000000},
		{dex3, 1000000, 995000},
	} {
		c := node.Deploy(pool.address)
		c.SetResult(t, dexABI, "reserveA", nil, big.NewInt(pool.reserveA))
		c.SetResult(t, dexABI, "reserveB", nil, big.NewInt(pool.reserveB))
	}
	tk := node.Deploy(tokenA)
	tk.SetResult(t, erc20, "name", nil, "Token A")
	tk.SetResult(t, erc20, "symbol", nil, "TKA")
	tk.SetResult(t, erc20, "decimals", nil, uint8(0))

	t.Run("spread", func(t *testing.T) {
		out, err := execute(t, "dex", "spread", dex1.Hex(), dex2.Hex(), dex3.Hex(), "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Contains(t, out, "0.833333")
		require.Contains(t, out, "0-1")
		require.Contains(t, out, "1-2")
		require.Contains(t, out, "Arbitrage opportunity: 20.00% spread between "+dex1.Hex()+" / "+dex2.Hex())
	})

	t.Run("spread below threshold", func(t *testing.T) {
		out, err := execute(t, "dex", "spread", dex1.Hex()+","+dex3.Hex(), "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Contains(t, out, "No arbitrage opportunity: best spread 0.50%")
	})

	t.Run("spread needs two pools", func(t *testing.T) {
		_, err := execute(t, "dex", "spread", dex1.Hex(), "--rpc-url", node.URL)
		require.ErrorIs(t, err, constants.ErrNotEnoughDexes)
	})

	t.Run("flashloan estimate", func(t *testing.T) {
		out, err := execute(t,
			"dex", "flashloan-estimate",
			"--dex1", dex1.Hex(),
			"--dex2", dex2.Hex(),
			"--token-a", tokenA.Hex(),
			"--amount", "1000",
			"--rpc-url", node.URL,
		)
		require.NoError(t, err)
		require.Contains(t, out, "1190.0")
		require.Contains(t, out, "189.0")
		require.Contains(t, out, "996 base units")
		require.Contains(t, out, "1001000.0 / 999004 base units")
		require.Contains(t, out, "1198810.0 / 1000996 base units")
		require.Contains(t, out, "Flash loan is profitable")
	})

	t.Run("flashloan estimate not profitable", func(t *testing.T) {
		out, err := execute(t,
			"dex", "flashloan-estimate",
			"--dex1", dex2.Hex(),
			"--dex2", dex1.Hex(),
			"--token-a", tokenA.Hex(),
			"--amount", "1000",
			"--rpc-url", node.URL,
		)
		require.NoError(t, err)
		require.Contains(t, out, "Flash loan is not profitable")
	})

	t.Run("flashloan estimate missing flag", func(t *testing.T) {
		_, err := execute(t, "dex", "flashloan-estimate", "--dex1", dex1.Hex(), "--rpc-url", node.URL)
		require.ErrorContains(t, err, "--dex2 is required")
	})
}

func TestNodeStatus(t *testing.T) {
	t.Run("live node", func(t *testing.T) {
		node := testutils.NewFakeNode(t)
		node.SetBlockNumber(1234567)
		out, err := execute(t, "node", "status", "--rpc-url", node.URL)
		require.NoError(t, err)
		require.Contains(t, out, testutils.NodeClientVersion)
		require.Contains(t, out, "31337")
		require.Contains(t, out, "1_234_567")
		require.Contains(t, out, "True")
	})

	t.Run("unreachable node", func(t *testing.T) {
		url := testutils.UnreachableURL(t)
		out, err := execute(t, "node", "status", "--rpc-url", url)
		require.ErrorContains(t, err, "node at "+url+" is not reachable")
		require.Contains(t, out, "False")
		require.NotContains(t, out, "not reachable")
	})
}

func TestConfigCommands(t *testing.T) {
	require := require.New(t)
	home := testutils.SetupTestHome(t)
	run := func(args ...string) (string, error) {
		out := &bytes.Buffer{}
		rootCmd := NewRootCmd()
		rootCmd.SetOut(out)
		rootCmd.SetErr(out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("config", "show")
	require.NoError(err)
	require.Contains(out, constants.DefaultRPCURL)
	require.Contains(out, "(not created yet)")

	_, err = run("config", "set", "rpc-url", "http://127.0.0.1:9545")
	require.NoError(err)
	_, err = run("config", "set", "request-timeout", "5s")
	require.NoError(err)
	require.FileExists(filepath.Join(home, constants.BaseDirName, constants.ConfigFileName))

	out, err = run("config", "show")
	require.NoError(err)
	require.Contains(out, "http://127.0.0.1:9545")
	require.Contains(out, "5s")
	require.NotContains(out, "(not created yet)")

	out, err = run("config", "show", "--rpc-url", "http://10.0.0.1:8545")
	require.NoError(err)
	require.Contains(out, "http://10.0.0.1:8545")

	_, err = run("config", "set", "rpc", "http://127.0.0.1:9545")
	require.ErrorContains(err, "unknown config key")
	_, err = run("config", "set", "contract-address", "0x12")
	require.ErrorIs(err, constants.ErrInvalidAddress)
	_, err = run("config", "set", "request-timeout", "soon")
	require.ErrorContains(err, "invalid value for request-timeout")
}
