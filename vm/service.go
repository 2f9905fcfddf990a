// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"fmt"
	"net/http"

	"github.com/ava-labs/avalanchego/ids"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/prefixvm/chain"
	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

type PublicService struct {
	vm *VM
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = svc.vm.Genesis()
	return nil
}

type IssueTxArgs struct {
	Tx []byte `serialize:"true" json:"tx"`
}

type IssueTxReply struct {
	TxID    ids.ID `serialize:"true" json:"txId"`
	Success bool   `serialize:"true" json:"success"`
}

func (svc *PublicService) IssueTx(_ *http.Request, args *IssueTxArgs, reply *IssueTxReply) error {
	if len(args.Tx) == 0 {
		return ErrInvalidEmptyTx
	}
	if len(args.Tx) > chain.MaxTxSize {
		return fmt.Errorf("%w: %d > %d", ErrTxTooLarge, len(args.Tx), chain.MaxTxSize)
	}
	tx := new(chain.Transaction)
	if _, err := chain.Unmarshal(args.Tx, tx); err != nil {
		return err
	}

	// otherwise, unexported tx.id field is empty
	if err := tx.Init(); err != nil {
		reply.Success = false
		return err
	}
	reply.TxID = tx.ID()

	if err := svc.vm.Submit(tx); err != nil {
		reply.Success = false
		return err
	}
	reply.Success = true
	return nil
}

type HasTxArgs struct {
	TxID ids.ID `serialize:"true" json:"txId"`
}

type HasTxReply struct {
	Accepted bool `serialize:"true" json:"accepted"`
}

func (svc *PublicService) HasTx(_ *http.Request, args *HasTxArgs, reply *HasTxReply) error {
	has, err := svc.vm.HasTx(args.TxID)
	if err != nil {
		return err
	}
	reply.Accepted = has
	return nil
}

type PrefixArgs struct {
	Prefix string `serialize:"true" json:"prefix"`
}

type PrefixReply struct {
	Exists  bool                `serialize:"true" json:"exists"`
	Address ids.ID              `serialize:"true" json:"address"`
	Record  *chain.PrefixRecord `serialize:"true" json:"record,omitempty"`
}

// Prefix looks up a record. Lowercase input is normalized first.
func (svc *PublicService) Prefix(_ *http.Request, args *PrefixArgs, reply *PrefixReply) error {
	prefix, err := parser.NormalizePrefix(args.Prefix)
	if err != nil {
		return err
	}
	r, exists, err := svc.vm.GetPrefix(prefix)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Address = chain.PrefixAddress(prefix)
	reply.Record = r
	return nil
}

type FeeRegistryReply struct {
	Initialized bool               `serialize:"true" json:"initialized"`
	Address     ids.ID             `serialize:"true" json:"address"`
	Registry    *chain.FeeRegistry `serialize:"true" json:"registry,omitempty"`
}

func (svc *PublicService) FeeRegistry(_ *http.Request, _ *struct{}, reply *FeeRegistryReply) error {
	r, exists, err := svc.vm.GetFeeRegistry()
	if err != nil {
		return err
	}
	reply.Initialized = exists
	reply.Address = chain.FeeRegistryAddress()
	reply.Registry = r
	return nil
}

type VerifiersReply struct {
	Address ids.ID                `serialize:"true" json:"address"`
	Roster  *chain.VerifierRoster `serialize:"true" json:"roster,omitempty"`
}

func (svc *PublicService) Verifiers(_ *http.Request, _ *struct{}, reply *VerifiersReply) error {
	r, _, err := svc.vm.GetVerifierRoster()
	if err != nil {
		return err
	}
	reply.Address = chain.VerifiersAddress()
	reply.Roster = r
	return nil
}

type TreasuryReply struct {
	Address ids.ID `serialize:"true" json:"address"`
	Balance uint64 `serialize:"true" json:"balance"`
	Reserve uint64 `serialize:"true" json:"reserve"`
}

func (svc *PublicService) Treasury(_ *http.Request, _ *struct{}, reply *TreasuryReply) error {
	bal, err := svc.vm.TreasuryBalance()
	if err != nil {
		return err
	}
	reply.Address = chain.TreasuryAddress()
	reply.Balance = bal
	reply.Reserve = svc.vm.genesis.TreasuryReserve
	return nil
}

type BalanceArgs struct {
	Address crypto.PublicKey `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	bal, err := svc.vm.Balance(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = bal
	return nil
}

type EventsArgs struct {
	Start uint64 `serialize:"true" json:"start"`
	Limit int    `serialize:"true" json:"limit"`
}

type EventsReply struct {
	Events []*chain.Event `serialize:"true" json:"events"`
	Count  uint64         `serialize:"true" json:"count"`
}

func (svc *PublicService) Events(_ *http.Request, args *EventsArgs, reply *EventsReply) error {
	events, count, err := svc.vm.Events(args.Start, args.Limit)
	if err != nil {
		return err
	}
	reply.Events = events
	reply.Count = count
	return nil
}
