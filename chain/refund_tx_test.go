// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/prefixvm/crypto"
)

func TestRefundTx(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))

	tt := []struct {
		setup  UnsignedTransaction
		by     *crypto.PrivateKey
		signer *crypto.PrivateKey
		err    error
	}{
		{ // pending, not expired
			signer: e.owner,
			err:    ErrRefundNotAllowed,
		},
		{
			setup:  &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP", Reason: "duplicate brand"},
			by:     e.verifier,
			signer: e.other,
			err:    ErrUnauthorizedOwnerAction,
		},
		{
			signer: e.owner,
			err:    nil,
		},
		{
			signer: e.owner,
			err:    ErrPrefixMissing,
		},
	}
	for i, tv := range tt {
		if tv.setup != nil {
			e.mustExec(2, tv.by, tv.setup)
		}
		err := e.exec(3, tv.signer, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}
	if b := e.balance(e.owner); b != testBalance {
		t.Fatalf("expected full refund, got balance %d", b)
	}
	if tr := e.treasury(); tr != 0 {
		t.Fatalf("expected empty treasury, got %d", tr)
	}
	if ev := e.lastEvent(); ev.Typ != EventRefunded || ev.Amount != testFee {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestRefundTxRoundTrip(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	e.mustExec(3, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	e.mustExec(4, e.owner, e.submitTx("MYAPP", e.owner))

	r := e.record("MYAPP")
	if r.Status != Pending || r.CreatedAt != 4 {
		t.Fatalf("expected fresh pending record, got %+v", r)
	}
}

func TestRefundTxExpiredPending(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	expiry := e.record("MYAPP").ExpiryAt

	if err := e.exec(expiry, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}); !errors.Is(err, ErrRefundNotAllowed) {
		t.Fatalf("expected %v, got %v", ErrRefundNotAllowed, err)
	}
	e.mustExec(expiry+1, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if b := e.balance(e.owner); b != testBalance {
		t.Fatalf("expected full refund, got balance %d", b)
	}
}

func TestRefundTxActive(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if err := e.exec(3, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}); !errors.Is(err, ErrRefundNotAllowed) {
		t.Fatalf("expected %v, got %v", ErrRefundNotAllowed, err)
	}
}

func TestRefundTxTreasuryShortfall(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	e.mustExec(3, e.admin, &WithdrawTreasuryTx{BaseTx: &BaseTx{}, Amount: testFee, Recipient: e.admin.PublicKey()})

	err := e.exec(4, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if !errors.Is(err, ErrInsufficientTreasuryBalance) {
		t.Fatalf("expected %v, got %v", ErrInsufficientTreasuryBalance, err)
	}
	if r := e.record("MYAPP"); r.Status != Rejected {
		t.Fatal("failed refund must leave the record")
	}
}

func TestRefundTxReapprovedPending(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	e.mustExec(3, e.owner, e.updateMetadataTx("MYAPP", e.owner))

	r := e.record("MYAPP")
	if r.Status != Pending || r.ApprovedAt == 0 {
		t.Fatalf("expected previously approved pending record, got %+v", r)
	}
	late := r.ExpiryAt + 1

	tt := []struct {
		utx    UnsignedTransaction
		signer *crypto.PrivateKey
		err    error
	}{
		{utx: &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}, signer: e.owner, err: ErrRefundNotAllowed},
		{utx: &ApproveTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}, signer: e.verifier, err: ErrPrefixExpired},
		{utx: &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}, signer: e.verifier, err: nil},
		{utx: &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"}, signer: e.owner, err: nil},
	}
	for i, tv := range tt {
		if err := e.exec(late, tv.signer, tv.utx); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}
	if b := e.balance(e.owner); b != testBalance {
		t.Fatalf("expected full refund, got balance %d", b)
	}
}

func TestRefundTxNoFee(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.mustExec(1, e.owner, e.submitTx("MYAPP", e.owner))
	e.mustExec(2, e.verifier, &RejectTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})

	r := e.record("MYAPP")
	r.FeePaid = 0
	if err := PutPrefixRecord(e.db, r); err != nil {
		t.Fatal(err)
	}
	err := e.exec(3, e.owner, &RefundTx{BaseTx: &BaseTx{}, Prefix: "MYAPP"})
	if !errors.Is(err, ErrRefundNotAllowed) {
		t.Fatalf("expected %v, got %v", ErrRefundNotAllowed, err)
	}
}
