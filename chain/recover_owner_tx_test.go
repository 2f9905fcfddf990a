// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/prefixvm/crypto"
)

func TestRecoverOwnerTx(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	poor := newKey(t)
	recoverTx := func(newOwner *crypto.PrivateKey) *RecoverOwnerTx {
		return &RecoverOwnerTx{BaseTx: &BaseTx{}, Prefix: "MYAPP", NewOwner: newOwner.PublicKey()}
	}

	tt := []struct {
		tx        *RecoverOwnerTx
		signer    *crypto.PrivateKey
		cosigners []*crypto.PrivateKey
		err       error
	}{
		{
			tx:        recoverTx(e.other),
			signer:    e.other,
			cosigners: []*crypto.PrivateKey{e.other},
			err:       ErrUnauthorizedAdmin,
		},
		{ // new owner did not consent
			tx:     recoverTx(e.other),
			signer: e.admin,
			err:    ErrUnauthorizedOwnerAction,
		},
		{ // pending is not recoverable
			tx:        recoverTx(e.other),
			signer:    e.admin,
			cosigners: []*crypto.PrivateKey{e.other},
			err:       ErrInvalidPrefixStatus,
		},
	}
	for i, tv := range tt {
		err := e.exec(2, tv.signer, tv.tx, tv.cosigners...)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	e.mustExec(3, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if err := e.exec(4, e.admin, recoverTx(poor), poor); !errors.Is(err, ErrInsufficientFee) {
		t.Fatalf("expected %v, got %v", ErrInsufficientFee, err)
	}
	e.mustExec(5, e.admin, recoverTx(e.other), e.other)

	r := e.record("MYAPP")
	if r.Owner != e.other.PublicKey() || r.Status != Active {
		t.Fatalf("unexpected record %+v", r)
	}
	if b := e.balance(e.other); b != testBalance-testFee {
		t.Fatalf("expected new owner to pay, balance %d", b)
	}
	if tr := e.treasury(); tr != 2*testFee {
		t.Fatalf("expected treasury %d, got %d", 2*testFee, tr)
	}
	ev := e.lastEvent()
	if ev.Typ != EventOwnerRecovered || ev.Owner != e.owner.PublicKey() || ev.NewOwner != e.other.PublicKey() {
		t.Fatalf("unexpected event %+v", ev)
	}

	// the previous owner lost control
	if err := e.exec(6, e.owner, e.updateMetadataTx("MYAPP", e.owner)); !errors.Is(err, ErrUnauthorizedOwnerAction) {
		t.Fatalf("expected %v, got %v", ErrUnauthorizedOwnerAction, err)
	}
}

func TestRecoverOwnerTxInactive(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	e.mustExec(3, e.admin, &DeactivateTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	err := e.exec(4, e.admin, &RecoverOwnerTx{BaseTx: &BaseTx{}, Prefix: "MYAPP", NewOwner: e.other.PublicKey()}, e.other)
	if !errors.Is(err, ErrInvalidPrefixStatus) {
		t.Fatalf("expected %v, got %v", ErrInvalidPrefixStatus, err)
	}
}
