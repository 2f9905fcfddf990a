// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/prefixvm/crypto"
)

func (e *testEnv) updateMetadataTx(prefix string, signer *crypto.PrivateKey) *UpdateMetadataTx {
	return &UpdateMetadataTx{
		BaseTx:         &BaseTx{},
		Prefix:         prefix,
		MetadataURI:    "https://example.com/meta.json",
		MetadataHash:   testHash2,
		OwnerSignature: signer.Sign(testHash2),
	}
}

func TestUpdateMetadataTx(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP", RefHash: common.Hash{2}})

	tt := []struct {
		tx     *UpdateMetadataTx
		signer *crypto.PrivateKey
		err    error
	}{
		{
			tx:     e.updateMetadataTx("MYAPP", e.other),
			signer: e.other,
			err:    ErrUnauthorizedOwnerAction,
		},
		{
			tx: func() *UpdateMetadataTx {
				u := e.updateMetadataTx("MYAPP", e.owner)
				u.MetadataURI = "ftp://example.com"
				return u
			}(),
			signer: e.owner,
			err:    ErrInvalidMetadataURI,
		},
		{ // proof must come from the owner
			tx:     e.updateMetadataTx("MYAPP", e.other),
			signer: e.owner,
			err:    ErrInvalidSignature,
		},
		{
			tx:     e.updateMetadataTx("MYAPP", e.owner),
			signer: e.owner,
			err:    nil,
		},
		{ // pending stays pending
			tx:     e.updateMetadataTx("MYAPP", e.owner),
			signer: e.owner,
			err:    nil,
		},
	}
	for i, tv := range tt {
		err := e.exec(10, tv.signer, tv.tx)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	r := e.record("MYAPP")
	if r.Status != Pending {
		t.Fatalf("expected re-review, got %s", r.Status)
	}
	if r.RefHash != (common.Hash{}) {
		t.Fatal("ref hash should be cleared on re-review")
	}
	if r.ExpiryAt != 10+DefaultPendingExpiry {
		t.Fatalf("unexpected expiry %d", r.ExpiryAt)
	}
	if r.MetadataHash != common.BytesToHash(testHash2) || r.MetadataURI != "https://example.com/meta.json" {
		t.Fatalf("metadata not updated %+v", r)
	}
	if r.FeePaid != testFee {
		t.Fatal("fee paid changed")
	}
	ev := e.lastEvent()
	if ev.Typ != EventMetadataUpdated || ev.MetadataHash != common.BytesToHash(testHash2) ||
		ev.OldMetadataHash != common.BytesToHash(testHash2) {
		t.Fatalf("unexpected event %+v", ev)
	}

	// a previously approved record is never refundable
	err := e.exec(r.ExpiryAt+1, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if !errors.Is(err, ErrRefundNotAllowed) {
		t.Fatalf("expected %v, got %v", ErrRefundNotAllowed, err)
	}
}

func TestUpdateMetadataTxRejected(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if err := e.exec(3, e.owner, e.updateMetadataTx("MYAPP", e.owner)); !errors.Is(err, ErrInvalidPrefixStatus) {
		t.Fatalf("expected %v, got %v", ErrInvalidPrefixStatus, err)
	}
	if err := e.exec(3, e.owner, &UpdateAuthorityTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}); !errors.Is(err, ErrInvalidPrefixStatus) {
		t.Fatalf("expected %v, got %v", ErrInvalidPrefixStatus, err)
	}
}

func TestUpdateAuthorityTx(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})

	keys := make([]crypto.PublicKey, MaxAuthorityKeys+1)
	for i := range keys {
		keys[i] = newKey(t).PublicKey()
	}
	tt := []struct {
		keys   []crypto.PublicKey
		signer *crypto.PrivateKey
		err    error
	}{
		{keys: keys[:1], signer: e.other, err: ErrUnauthorizedOwnerAction},
		{keys: keys, signer: e.owner, err: ErrAuthorityKeysTooMany},
		{keys: []crypto.PublicKey{keys[0], keys[1], keys[0]}, signer: e.owner, err: ErrDuplicateAuthorityKey},
		{keys: keys[:MaxAuthorityKeys], signer: e.owner, err: nil},
		{keys: keys[:2], signer: e.owner, err: nil},
	}
	for i, tv := range tt {
		err := e.exec(3, tv.signer, &UpdateAuthorityTx{BaseTx: &BaseTx{}, Prefix: "MYAPP", AuthorityKeys: tv.keys})
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}
	r := e.record("MYAPP")
	if r.Status != Active {
		t.Fatalf("status changed to %s", r.Status)
	}
	if len(r.AuthorityKeys) != 2 || r.AuthorityKeys[0] != keys[0] || r.AuthorityKeys[1] != keys[1] {
		t.Fatalf("unexpected keys %v", r.AuthorityKeys)
	}
	ev := e.lastEvent()
	if ev.Typ != EventAuthorityUpdated || len(ev.OldAuthorityKeys) != MaxAuthorityKeys || len(ev.AuthorityKeys) != 2 {
		t.Fatalf("unexpected event %+v", ev)
	}
}
