// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), constants.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), constants.WriteReadReadPerms))
	return path
}

func TestDefaults(t *testing.T) {
	require := require.New(t)
	cf := New()
	require.Equal(constants.DefaultRPCURL, cf.GetRPCURL())
	require.Equal(constants.DefaultContractAddress, cf.GetContractAddress())
	require.Zero(cf.GetRequestTimeout())
	require.Equal(constants.DefaultLogLevel, cf.GetLogLevel())
}

func TestSetConfig(t *testing.T) {
	require := require.New(t)
	path := writeConfigFile(t, `{"rpc-url": "http://10.0.0.1:8545", "request-timeout": "15s"}`)
	cf := New()
	require.NoError(cf.SetConfig(logging.NoLog{}, path))
	require.True(cf.ConfigFileExists())
	require.Equal(path, cf.GetConfigPath())
	require.Equal("http://10.0.0.1:8545", cf.GetRPCURL())
	require.Equal(15*time.Second, cf.GetRequestTimeout())
	require.Equal(constants.DefaultContractAddress, cf.GetContractAddress())
}

func TestSetConfig_NoConfig(t *testing.T) {
	require := require.New(t)
	cf := New()
	path := filepath.Join(t.TempDir(), constants.ConfigFileName)
	require.NoError(cf.SetConfig(logging.NoLog{}, path))
	require.False(cf.ConfigFileExists())
	require.Equal(constants.DefaultRPCURL, cf.GetRPCURL())
}

func TestSetConfig_Malformed(t *testing.T) {
	cf := New()
	path := writeConfigFile(t, `{"rpc-url": `)
	require.Error(t, cf.SetConfig(logging.NoLog{}, path))
}

func TestPrecedence(t *testing.T) {
	require := require.New(t)
	path := writeConfigFile(t, `{"rpc-url": "http://file:8545", "contract-address": "0x0165878A594ca255338adfa4d48449f69242Eb8F"}`)
	t.Setenv("HARDHAT_CLI_RPC_URL", "http://env:8545")
	t.Setenv("HARDHAT_CLI_REQUEST_TIMEOUT", "3s")

	cf := New()
	require.NoError(cf.SetConfig(logging.NoLog{}, path))
	require.Equal("http://env:8545", cf.GetRPCURL())
	require.Equal("0x0165878A594ca255338adfa4d48449f69242Eb8F", cf.GetContractAddress())
	require.Equal(3*time.Second, cf.GetRequestTimeout())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(constants.ConfigRPCURLKey, "", "")
	require.NoError(cf.BindFlag(constants.ConfigRPCURLKey, flags.Lookup(constants.ConfigRPCURLKey)))
	// an unchanged flag does not override
	require.Equal("http://env:8545", cf.GetRPCURL())
	require.NoError(flags.Parse([]string{"--rpc-url", "http://flag:8545"}))
	require.Equal("http://flag:8545", cf.GetRPCURL())
}

func TestSetConfigValue(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "nested", constants.ConfigFileName)
	t.Setenv("HARDHAT_CLI_CONTRACT_ADDRESS", "0x0165878A594ca255338adfa4d48449f69242Eb8F")

	cf := New()
	require.Error(cf.SetConfigValue(constants.ConfigRPCURLKey, "http://x:1"))
	require.NoError(cf.SetConfig(logging.NoLog{}, path))
	require.NoError(cf.SetConfigValue(constants.ConfigRPCURLKey, "http://127.0.0.1:9545"))
	require.Equal("http://127.0.0.1:9545", cf.GetRPCURL())
	require.True(cf.ConfigFileExists())

	reloaded := New()
	require.NoError(reloaded.SetConfig(logging.NoLog{}, path))
	require.Equal("http://127.0.0.1:9545", reloaded.GetRPCURL())

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.NotContains(string(content), "contract-address")
}

func TestKeys(t *testing.T) {
	cf := New()
	require.Equal(t, []string{"contract-address", "log-level", "request-timeout", "rpc-url"}, cf.Keys())
	require.True(t, cf.IsKnownKey("rpc-url"))
	require.False(t, cf.IsKnownKey("rpc"))
}
