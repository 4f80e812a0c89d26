// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arbitragelab/hardhat-cli/pkg/constants"
	"github.com/arbitragelab/hardhat-cli/pkg/utils"
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config resolves settings with precedence flag > env > config file > default
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(constants.ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	v.SetDefault(constants.ConfigRPCURLKey, constants.DefaultRPCURL)
	v.SetDefault(constants.ConfigContractAddressKey, constants.DefaultContractAddress)
	v.SetDefault(constants.ConfigRequestTimeoutKey, constants.DefaultRequestTimeout)
	v.SetDefault(constants.ConfigLogLevelKey, constants.DefaultLogLevel)
	return &Config{v: v}
}

// SetConfig reads the config file at [s], if any
func (c *Config) SetConfig(log logging.Logger, s string) error {
	c.v.SetConfigFile(s)
	if !utils.FileExists(s) {
		log.Info("No config file found", zap.String("config-file", s))
		return nil
	}
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failure reading config file %s: %w", s, err)
	}
	log.Info("Using config file", zap.String("config-file", s))
	return nil
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.GetConfigPath())
}

// BindFlag makes [flag] override [key] when it is set on the command line
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}

// SetConfigValue sets the value of a configuration key and persists it
// into the config file
func (c *Config) SetConfigValue(key string, value interface{}) error {
	path := c.GetConfigPath()
	if path == "" {
		return fmt.Errorf("no config file set")
	}
	// only persist what was read from the file or set explicitly, so flag
	// and env overrides do not leak into it
	fileValues := viper.New()
	fileValues.SetConfigType("json")
	fileValues.SetConfigFile(path)
	if utils.FileExists(path) {
		if err := fileValues.ReadInConfig(); err != nil {
			return fmt.Errorf("failure reading config file %s: %w", path, err)
		}
	}
	fileValues.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	if err := fileValues.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failure writing config file %s: %w", path, err)
	}
	c.v.Set(key, value)
	return nil
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetRPCURL() string {
	return c.v.GetString(constants.ConfigRPCURLKey)
}

func (c *Config) GetContractAddress() string {
	return c.v.GetString(constants.ConfigContractAddressKey)
}

func (c *Config) GetRequestTimeout() time.Duration {
	return c.v.GetDuration(constants.ConfigRequestTimeoutKey)
}

func (c *Config) GetLogLevel() string {
	return c.v.GetString(constants.ConfigLogLevelKey)
}

// Keys returns the known configuration keys, sorted
func (*Config) Keys() []string {
	keys := []string{
		constants.ConfigRPCURLKey,
		constants.ConfigContractAddressKey,
		constants.ConfigRequestTimeoutKey,
		constants.ConfigLogLevelKey,
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) IsKnownKey(key string) bool {
	for _, k := range c.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
