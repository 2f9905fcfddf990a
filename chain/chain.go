// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain implements the prefix registration protocol: the data model,
// its storage layout and every lifecycle transaction.
package chain

import (
	"github.com/ava-labs/avalanchego/utils/units"
)

const (
	MaxTxSize = 16 * units.KiB

	// Record params
	MaxAuthorityKeys = 10
	MaxReasonSize    = 255

	// Roster params
	MaxVerifiers = 256

	// Review deadline for Pending records
	DefaultPendingExpiry = 14 * 24 * 60 * 60 // 14 Days

	DefaultMagic = 1
)
