// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/client"
	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

func getPrefixOp(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	prefix, err := parser.NormalizePrefix(args[0])
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse prefix", err)
	}
	return prefix, nil
}

func getPublicKeyOp(args []string) (crypto.PublicKey, error) {
	if len(args) != 1 {
		return crypto.EmptyPublicKey, fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return crypto.ParsePublicKey(args[0])
}

func parsePublicKeys(addrs []string) ([]crypto.PublicKey, error) {
	keys := make([]crypto.PublicKey, 0, len(addrs))
	for _, a := range addrs {
		k, err := crypto.ParsePublicKey(a)
		if err != nil {
			return nil, fmt.Errorf("%w: authority key %q", err, a)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// signedMetadata decodes a hex metadata hash and signs it with [priv].
func signedMetadata(priv *crypto.PrivateKey, hash string) ([]byte, []byte, error) {
	h, err := hexutil.Decode(hash)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: metadata hash must be 0x-prefixed hex", err)
	}
	return h, priv.Sign(h), nil
}

// issue signs [utx] with the CLI key and waits for it to be accepted.
func issue(utx chain.UnsignedTransaction, prefix string, opts ...client.OpOption) (*crypto.PrivateKey, client.Client, error) {
	priv, err := crypto.LoadPrivateKeyFile(privateKeyFile)
	if err != nil {
		return nil, nil, err
	}
	cli := client.New(uri, requestTimeout)
	opts = append(opts, client.WithPollTx())
	if len(prefix) > 0 {
		opts = append(opts, client.WithInfo(prefix))
	}
	if _, err := client.SignIssueTx(context.Background(), cli, utx, priv, opts...); err != nil {
		return nil, nil, err
	}
	return priv, cli, nil
}

func printBalance(cli client.Client, pk crypto.PublicKey) error {
	b, err := cli.Balance(pk)
	if err != nil {
		return err
	}
	color.Cyan("address=%s balance=%d", pk, b)
	return nil
}
