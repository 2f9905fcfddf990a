// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/vm"
)

const (
	envPrefix = "PREFIXVM"

	configFileKey = "config-file"
	httpHostKey   = "http-host"
	httpPortKey   = "http-port"
	dbDirKey      = "db-dir"
	genesisKey    = "genesis-file"
	logLevelKey   = "log-level"

	recordCacheSizeKey   = "record-cache-size"
	maxEventsLimitKey    = "max-events-limit"
	compactIntervalKey   = "compact-interval"
	requestsPerSecondKey = "requests-per-second"
	requestBurstKey      = "request-burst"
)

var v = viper.New()

func initFlags(cmd *cobra.Command) {
	var defaults vm.Config
	defaults.SetDefaults()

	fs := cmd.Flags()
	fs.String(configFileKey, "", "config file path (json, yaml or toml)")
	fs.String(httpHostKey, "127.0.0.1", "address the RPC server listens on")
	fs.Uint16(httpPortKey, 9650, "port the RPC server listens on")
	fs.String(dbDirKey, "", "database directory, in-memory if empty")
	fs.String(genesisKey, "", "genesis file path, defaults if empty")
	fs.String(logLevelKey, log.LvlInfo.String(), "log level (debug, info, warn, error, crit)")

	fs.Int(recordCacheSizeKey, defaults.RecordCacheSize, "number of prefix records kept in memory")
	fs.Int(maxEventsLimitKey, defaults.MaxEventsLimit, "maximum events returned per request")
	fs.Duration(compactIntervalKey, defaults.CompactInterval, "database compaction interval, 0 to disable")
	fs.Float64(requestsPerSecondKey, defaults.RequestsPerSecond, "RPC requests allowed per second, 0 to disable")
	fs.Int(requestBurstKey, defaults.RequestBurst, "RPC request burst size")
}

type daemonConfig struct {
	addr        string
	dbDir       string
	genesisFile string
	logLevel    log.Lvl
	vm          vm.Config
}

// loadConfig merges flags, PREFIXVM_* environment variables and the config
// file, in that order of precedence.
func loadConfig(fs *pflag.FlagSet) (*daemonConfig, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if f := v.GetString(configFileKey); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: failed to read config %s", err, f)
		}
	}

	lvl, err := log.LvlFromString(v.GetString(logLevelKey))
	if err != nil {
		return nil, err
	}

	cfg := &daemonConfig{
		addr:        fmt.Sprintf("%s:%d", v.GetString(httpHostKey), v.GetUint(httpPortKey)),
		dbDir:       v.GetString(dbDirKey),
		genesisFile: v.GetString(genesisKey),
		logLevel:    lvl,
	}
	cfg.vm.SetDefaults()
	if err := v.Unmarshal(&cfg.vm); err != nil {
		return nil, err
	}
	if cfg.vm.RecordCacheSize <= 0 {
		return nil, errors.New("record cache size must be positive")
	}
	if cfg.vm.MaxEventsLimit <= 0 {
		return nil, errors.New("max events limit must be positive")
	}
	return cfg, nil
}

func loadGenesis(path string) (*chain.Genesis, error) {
	if path == "" {
		log.Warn("no genesis file, using defaults")
		return chain.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return chain.ParseGenesis(b)
}
