// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/prefixvm/crypto"
)

var (
	ErrInvalidGenesis = errors.New("invalid genesis")
)

type Allocation struct {
	Address crypto.PublicKey `serialize:"true" json:"address"`
	Balance uint64           `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic is mixed into every transaction digest to prevent replays across
	// networks.
	Magic uint64 `serialize:"true" json:"magic"`

	// PendingExpiry is how many seconds a Pending record waits for review
	// before it can no longer be approved.
	PendingExpiry uint64 `serialize:"true" json:"pendingExpiry"`

	// TreasuryReserve is never withdrawable by the admin.
	TreasuryReserve uint64 `serialize:"true" json:"treasuryReserve"`

	// Allocations seed the ledger balances fees are paid from.
	Allocations []*Allocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic:         DefaultMagic,
		PendingExpiry: DefaultPendingExpiry,
	}
}

// ParseGenesis decodes a JSON genesis, defaulting unset params.
func ParseGenesis(b []byte) (*Genesis, error) {
	g := DefaultGenesis()
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGenesis, err)
	}
	return g, g.Verify()
}

func (g *Genesis) Verify() error {
	if g.Magic == 0 {
		return fmt.Errorf("%w: magic must be non-zero", ErrInvalidGenesis)
	}
	if g.PendingExpiry == 0 {
		return fmt.Errorf("%w: pending expiry must be non-zero", ErrInvalidGenesis)
	}
	return nil
}

// Load applies the allocations exactly once per database.
func (g *Genesis) Load(db database.Database) error {
	has, err := db.Has(genesisKey)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	for _, alloc := range g.Allocations {
		if _, err := ModifyBalance(db, ids.ID(alloc.Address), true, alloc.Balance); err != nil {
			return err
		}
	}
	log.Debug("loaded genesis allocations", "count", len(g.Allocations))
	return db.Put(genesisKey, []byte{1})
}
