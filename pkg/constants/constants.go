// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	BaseDirName            = ".hardhat-cli"
	LogDir                 = "logs"
	ConfigFileName         = "config.json"
	ConfigEnvPrefix        = "HARDHAT_CLI"
	LoggerName             = "hardhat-cli"
	DefaultLogLevel        = "ERROR"
	MaxLogFileSize         = 4
	MaxNumOfLogFiles       = 5
	RetainOldFiles         = 0 // retain all old log files
	DefaultRequestTimeout  = time.Duration(0)
	DefaultTokenDecimals   = 18
	DefaultRPCURL          = "http://127.0.0.1:8545"
	DefaultContractAddress = "0x5FC8d32690cc91D4c39d9d3abcBD16989F875707"

	// config keys, shared by flags, env vars and the config file
	ConfigRPCURLKey          = "rpc-url"
	ConfigContractAddressKey = "contract-address"
	ConfigRequestTimeoutKey  = "request-timeout"
	ConfigLogLevelKey        = "log-level"

	// swap fee applied by the DEX pools, in per mille
	SwapFeeNumerator   = 997
	SwapFeeDenominator = 1000
	// flash loan fee, amount / FlashLoanFeeDivisor (0.1%)
	FlashLoanFeeDivisor = 1000
	// minimum spread, in percent, for an arbitrage to be worth it
	MinArbitrageSpread = 1.0
)
