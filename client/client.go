// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements "prefixvm" client SDK.
package client

import (
	"context"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/fatih/color"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/vm"
)

// Client defines prefixvm client operations.
type Client interface {
	// Pings the VM.
	Ping() (bool, error)
	// Returns the VM genesis.
	Genesis() (*chain.Genesis, error)

	// Returns the record of a prefix, if any.
	Prefix(prefix string) (*chain.PrefixRecord, bool, error)
	// Returns the fee registry, or false before initialization.
	FeeRegistry() (*chain.FeeRegistry, bool, error)
	// Returns the verifier roster.
	Verifiers() (*chain.VerifierRoster, error)
	// Returns the treasury balance and its non-withdrawable reserve.
	Treasury() (bal uint64, reserve uint64, err error)
	// Balance returns the balance of an account.
	Balance(pk crypto.PublicKey) (bal uint64, err error)
	// Events returns up to [limit] events from [start] and the total count.
	Events(start uint64, limit int) ([]*chain.Event, uint64, error)

	// Issues the transaction and returns the transaction ID.
	IssueTx(d []byte) (ids.ID, error)
	// Checks the status of the transaction, and returns "true" if confirmed.
	HasTx(id ids.ID) (bool, error)
	// Polls the transactions until its status is confirmed.
	PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		vm.PublicEndpoint,
		vm.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(vm.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(vm.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Prefix(prefix string) (*chain.PrefixRecord, bool, error) {
	resp := new(vm.PrefixReply)
	if err := cli.req.SendRequest(
		"prefix",
		&vm.PrefixArgs{Prefix: prefix},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Record, resp.Exists, nil
}

func (cli *client) FeeRegistry() (*chain.FeeRegistry, bool, error) {
	resp := new(vm.FeeRegistryReply)
	if err := cli.req.SendRequest(
		"feeRegistry",
		nil,
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Registry, resp.Initialized, nil
}

func (cli *client) Verifiers() (*chain.VerifierRoster, error) {
	resp := new(vm.VerifiersReply)
	if err := cli.req.SendRequest(
		"verifiers",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Roster, nil
}

func (cli *client) Treasury() (uint64, uint64, error) {
	resp := new(vm.TreasuryReply)
	if err := cli.req.SendRequest(
		"treasury",
		nil,
		resp,
	); err != nil {
		return 0, 0, err
	}
	return resp.Balance, resp.Reserve, nil
}

func (cli *client) Balance(pk crypto.PublicKey) (bal uint64, err error) {
	resp := new(vm.BalanceReply)
	if err = cli.req.SendRequest(
		"balance",
		&vm.BalanceArgs{
			Address: pk,
		},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) Events(start uint64, limit int) ([]*chain.Event, uint64, error) {
	resp := new(vm.EventsReply)
	if err := cli.req.SendRequest(
		"events",
		&vm.EventsArgs{Start: start, Limit: limit},
		resp,
	); err != nil {
		return nil, 0, err
	}
	return resp.Events, resp.Count, nil
}

func (cli *client) IssueTx(d []byte) (ids.ID, error) {
	resp := new(vm.IssueTxReply)
	if err := cli.req.SendRequest(
		"issueTx",
		&vm.IssueTxArgs{Tx: d},
		resp,
	); err != nil {
		return ids.Empty, err
	}
	return resp.TxID, nil
}

func (cli *client) HasTx(txID ids.ID) (bool, error) {
	resp := new(vm.HasTxReply)
	if err := cli.req.SendRequest(
		"hasTx",
		&vm.HasTxArgs{TxID: txID},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Accepted, nil
}

func (cli *client) PollTx(ctx context.Context, txID ids.ID) (confirmed bool, err error) {
done:
	for ctx.Err() == nil {
		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			break done
		}

		confirmed, err := cli.HasTx(txID)
		if err != nil {
			color.Red("polling transaction failed %v", err)
			continue
		}
		if confirmed {
			return true, nil
		}
	}
	return false, ctx.Err()
}

type Op struct {
	pollTx    bool
	prefix    string
	cosigners []*crypto.PrivateKey
}

type OpOption func(*Op)

func (op *Op) applyOpts(opts []OpOption) {
	for _, opt := range opts {
		opt(op)
	}
}

// "true" to poll transaction for its confirmation.
func WithPollTx() OpOption {
	return func(op *Op) { op.pollTx = true }
}

// Non-empty to print out prefix information.
func WithInfo(prefix string) OpOption {
	return func(op *Op) { op.prefix = prefix }
}

// WithCoSigners attaches co-signatures, required by owner recovery.
func WithCoSigners(keys ...*crypto.PrivateKey) OpOption {
	return func(op *Op) { op.cosigners = append(op.cosigners, keys...) }
}
