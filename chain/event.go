// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/prefixvm/crypto"
)

const (
	EventSubmitted         = "submitted"
	EventApproved          = "approved"
	EventRejected          = "rejected"
	EventMetadataUpdated   = "metadataUpdated"
	EventAuthorityUpdated  = "authorityUpdated"
	EventDeactivated       = "deactivated"
	EventReactivated       = "reactivated"
	EventRefunded          = "refunded"
	EventOwnerRecovered    = "ownerRecovered"
	EventFeeUpdated        = "feeUpdated"
	EventPauseUpdated      = "pauseUpdated"
	EventVerifierAdded     = "verifierAdded"
	EventVerifierRemoved   = "verifierRemoved"
	EventTreasuryWithdrawn = "treasuryWithdrawn"
)

// Event is the audit record appended by every successful transaction. Only
// the fields relevant to [Typ] are populated.
type Event struct {
	Seq       uint64           `serialize:"true" json:"seq"`
	Typ       string           `serialize:"true" json:"type"`
	Timestamp uint64           `serialize:"true" json:"timestamp"`
	TxID      ids.ID           `serialize:"true" json:"txId"`
	Actor     crypto.PublicKey `serialize:"true" json:"actor"`

	Prefix  string `serialize:"true" json:"prefix,omitempty"`
	Address ids.ID `serialize:"true" json:"address"`

	Owner     crypto.PublicKey `serialize:"true" json:"owner"`
	NewOwner  crypto.PublicKey `serialize:"true" json:"newOwner"`
	Verifier  crypto.PublicKey `serialize:"true" json:"verifier"`
	Recipient crypto.PublicKey `serialize:"true" json:"recipient"`

	Amount uint64 `serialize:"true" json:"amount,omitempty"`
	OldFee uint64 `serialize:"true" json:"oldFee,omitempty"`
	NewFee uint64 `serialize:"true" json:"newFee,omitempty"`
	Paused bool   `serialize:"true" json:"paused,omitempty"`

	MetadataURI     string      `serialize:"true" json:"metadataUri,omitempty"`
	MetadataHash    common.Hash `serialize:"true" json:"metadataHash"`
	OldMetadataHash common.Hash `serialize:"true" json:"oldMetadataHash"`
	RefHash         common.Hash `serialize:"true" json:"refHash"`
	Reason          string      `serialize:"true" json:"reason,omitempty"`

	AuthorityKeys    []crypto.PublicKey `serialize:"true" json:"authorityKeys,omitempty"`
	OldAuthorityKeys []crypto.PublicKey `serialize:"true" json:"oldAuthorityKeys,omitempty"`
}
