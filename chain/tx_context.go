// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/prefixvm/crypto"
)

// TransactionContext is everything an operation may read or write. The
// database is the atomic unit the operation commits or aborts with.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	BlockTime uint64
	TxID      ids.ID
	Sender    crypto.PublicKey

	// CoSigners have each produced a valid signature over the same
	// transaction digest as [Sender].
	CoSigners []crypto.PublicKey
}

func (t *TransactionContext) signedBy(k crypto.PublicKey) bool {
	if k == t.Sender {
		return true
	}
	for _, c := range t.CoSigners {
		if c == k {
			return true
		}
	}
	return false
}

// emit stamps [e] with the transaction it belongs to and appends it to the
// event log.
func (t *TransactionContext) emit(e *Event) error {
	e.Timestamp = t.BlockTime
	e.TxID = t.TxID
	e.Actor = t.Sender
	return AppendEvent(t.Database, e)
}
