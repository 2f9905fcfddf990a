// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

var _ UnsignedTransaction = &SubmitTx{}

// SubmitTx claims [Prefix] for the sender, paying the current fee into the
// treasury. The record stays Pending until a verifier reviews it.
type SubmitTx struct {
	*BaseTx     `serialize:"true" json:"baseTx"`
	Prefix      string `serialize:"true" json:"prefix"`
	MetadataURI string `serialize:"true" json:"metadataUri"`

	// MetadataHash must be exactly 32 bytes.
	MetadataHash []byte `serialize:"true" json:"metadataHash"`

	// OwnerSignature is the sender's signature over [MetadataHash].
	OwnerSignature []byte `serialize:"true" json:"ownerSignature"`

	AuthorityKeys []crypto.PublicKey `serialize:"true" json:"authorityKeys"`
}

func (s *SubmitTx) Execute(t *TransactionContext) error {
	r, err := loadRegistry(t)
	if err != nil {
		return err
	}
	if err := requireUnpaused(r); err != nil {
		return err
	}
	if err := parser.CheckPrefix(s.Prefix); err != nil {
		return err
	}
	if err := parser.CheckMetadata(s.MetadataURI, s.MetadataHash); err != nil {
		return err
	}
	if err := checkAuthorityKeys(s.AuthorityKeys); err != nil {
		return err
	}
	if err := crypto.VerifyProof(t.Sender, s.MetadataHash, s.OwnerSignature); err != nil {
		return err
	}
	status, err := Transition(None, Submit)
	if err != nil {
		return err
	}
	if err := chargeFee(t, t.Sender, r.CurrentFee); err != nil {
		return err
	}
	record := &PrefixRecord{
		Owner:         t.Sender,
		Prefix:        s.Prefix,
		MetadataURI:   s.MetadataURI,
		MetadataHash:  common.BytesToHash(s.MetadataHash),
		Status:        status,
		AuthorityKeys: copyKeys(s.AuthorityKeys),
		FeePaid:       r.CurrentFee,
		ExpiryAt:      t.BlockTime + t.Genesis.PendingExpiry,
		CreatedAt:     t.BlockTime,
		UpdatedAt:     t.BlockTime,
	}
	if err := CreatePrefixRecord(t.Database, record); err != nil {
		return err
	}
	return t.emit(&Event{
		Typ:           EventSubmitted,
		Prefix:        s.Prefix,
		Address:       PrefixAddress(s.Prefix),
		Owner:         t.Sender,
		Amount:        r.CurrentFee,
		MetadataURI:   s.MetadataURI,
		MetadataHash:  record.MetadataHash,
		AuthorityKeys: record.AuthorityKeys,
	})
}

func (s *SubmitTx) Copy() UnsignedTransaction {
	h := make([]byte, len(s.MetadataHash))
	copy(h, s.MetadataHash)
	sig := make([]byte, len(s.OwnerSignature))
	copy(sig, s.OwnerSignature)
	return &SubmitTx{
		BaseTx:         s.BaseTx.Copy(),
		Prefix:         s.Prefix,
		MetadataURI:    s.MetadataURI,
		MetadataHash:   h,
		OwnerSignature: sig,
		AuthorityKeys:  copyKeys(s.AuthorityKeys),
	}
}
