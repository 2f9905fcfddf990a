// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/crypto"
)

// Signs and issues the transaction.
func SignIssueTx(
	ctx context.Context,
	cli Client,
	utx chain.UnsignedTransaction,
	priv *crypto.PrivateKey,
	opts ...OpOption,
) (txID ids.ID, err error) {
	ret := &Op{}
	ret.applyOpts(opts)

	g, err := cli.Genesis()
	if err != nil {
		return ids.Empty, err
	}

	utx.SetSender(priv.PublicKey())
	utx.SetMagic(g.Magic)
	if utx.GetNonce() == 0 {
		utx.SetNonce(uint64(time.Now().UnixNano()))
	}

	tx, err := chain.Sign(utx, priv, ret.cosigners...)
	if err != nil {
		return ids.Empty, err
	}

	color.Yellow(
		"issuing tx %s (sender=%s, cosigners=%d, size=%d)",
		tx.ID(), priv.PublicKey(), len(ret.cosigners), tx.Size(),
	)
	txID, err = cli.IssueTx(tx.Bytes())
	if err != nil {
		return ids.Empty, err
	}

	if ret.pollTx {
		color.Green("issued transaction %s (now polling)", txID)
		confirmed, err := cli.PollTx(ctx, txID)
		if err != nil {
			return ids.Empty, err
		}
		if !confirmed {
			color.Yellow("transaction %s not confirmed", txID)
		} else {
			color.Green("transaction %s confirmed", txID)
		}
	}

	if len(ret.prefix) > 0 {
		r, exists, err := cli.Prefix(ret.prefix)
		if err != nil {
			color.Red("cannot get prefix info %v", err)
			return ids.Empty, err
		}
		if !exists {
			color.Blue("prefix %s: no record", ret.prefix)
			return txID, nil
		}
		color.Blue(
			"prefix %s: status=%s owner=%s feePaid=%d keys=%d",
			r.Prefix, r.Status, r.Owner, r.FeePaid, len(r.AuthorityKeys),
		)
		if r.ExpiryAt > 0 {
			expiry := time.Unix(int64(r.ExpiryAt), 0)
			color.Blue("review deadline %v (%v remaining)", expiry, time.Until(expiry))
		}
	}

	return txID, nil
}
