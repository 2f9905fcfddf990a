// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/prefixvm/crypto"
)

// FeeRegistry is the protocol-wide fee and pause state. It is created once by
// [InitializeTx] and never removed.
type FeeRegistry struct {
	Admin      crypto.PublicKey `serialize:"true" json:"admin"`
	CurrentFee uint64           `serialize:"true" json:"currentFee"`
	Paused     bool             `serialize:"true" json:"paused"`
	CreatedAt  uint64           `serialize:"true" json:"createdAt"`
	UpdatedAt  uint64           `serialize:"true" json:"updatedAt"`
}

func (r *FeeRegistry) IsAdmin(k crypto.PublicKey) bool {
	return r.Admin == k
}
