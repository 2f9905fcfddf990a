// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"
)

type Config struct {
	RecordCacheSize int `json:"recordCacheSize" mapstructure:"record-cache-size"`
	MaxEventsLimit  int `json:"maxEventsLimit" mapstructure:"max-events-limit"`

	CompactInterval time.Duration `json:"compactInterval" mapstructure:"compact-interval"`

	// Zero disables request limiting.
	RequestsPerSecond float64 `json:"requestsPerSecond" mapstructure:"requests-per-second"`
	RequestBurst      int     `json:"requestBurst" mapstructure:"request-burst"`
}

func (c *Config) SetDefaults() {
	c.RecordCacheSize = 1024
	c.MaxEventsLimit = 256

	c.CompactInterval = 1 * time.Minute

	c.RequestsPerSecond = 50
	c.RequestBurst = 100
}
