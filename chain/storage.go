// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/prefixvm/crypto"
	"github.com/ava-labs/prefixvm/parser"
)

// 0x0/ (singletons)
//   -> [fee registry address] => fee registry
//   -> [verifiers address] => verifier roster
// 0x1/ (prefix records)
//   -> [prefix address] => prefix record
// 0x2/ (balances)
//   -> [account] => balance
// 0x3/ (events)
//   -> [seq] => event
// 0x4/ (tx hashes)
//   -> [txID] => block time
// 0x5/ (meta)
//   -> [event seq | genesis]

const (
	singletonPrefix = 0x0
	recordPrefix    = 0x1
	balancePrefix   = 0x2
	eventPrefix     = 0x3
	txPrefix        = 0x4
	metaPrefix      = 0x5

	feeRegistryTag = "fee_registry"
	verifiersTag   = "verifiers"
	treasuryTag    = "treasury"
	prefixTag      = "prefix"
)

var (
	eventSeqKey = []byte{metaPrefix, parser.ByteDelimiter, 'e'}
	genesisKey  = []byte{metaPrefix, parser.ByteDelimiter, 'g'}

	feeRegistryAddress = DeriveAddress(feeRegistryTag, nil)
	verifiersAddress   = DeriveAddress(verifiersTag, nil)
	treasuryAddress    = DeriveAddress(treasuryTag, feeRegistryAddress[:])
)

// DeriveAddress hashes [tag] and [key] into the location a record is stored
// at. Anyone can recompute it, and no two (tag, key) pairs collide.
func DeriveAddress(tag string, key []byte) ids.ID {
	b := make([]byte, 0, len(tag)+1+len(key))
	b = append(b, tag...)
	b = append(b, parser.ByteDelimiter)
	b = append(b, key...)
	return ids.ID(sha3.Sum256(b))
}

func FeeRegistryAddress() ids.ID { return feeRegistryAddress }

func VerifiersAddress() ids.ID { return verifiersAddress }

// TreasuryAddress is the escrow account submission fees are paid into.
func TreasuryAddress() ids.ID { return treasuryAddress }

// PrefixAddress expects a normalized prefix.
func PrefixAddress(prefix string) ids.ID {
	return DeriveAddress(prefixTag, []byte(prefix))
}

// AccountAddress is the balance key of a user identity.
func AccountAddress(pk crypto.PublicKey) ids.ID {
	return ids.ID(pk)
}

func prefixKey(pfx byte, id ids.ID) []byte {
	k := make([]byte, 2+len(id))
	k[0] = pfx
	k[1] = parser.ByteDelimiter
	copy(k[2:], id[:])
	return k
}

func SingletonKey(addr ids.ID) []byte { return prefixKey(singletonPrefix, addr) }

func RecordKey(addr ids.ID) []byte { return prefixKey(recordPrefix, addr) }

func BalanceKey(addr ids.ID) []byte { return prefixKey(balancePrefix, addr) }

func PrefixTxKey(txID ids.ID) []byte { return prefixKey(txPrefix, txID) }

func EventKey(seq uint64) []byte {
	k := make([]byte, 2+8)
	k[0] = eventPrefix
	k[1] = parser.ByteDelimiter
	binary.BigEndian.PutUint64(k[2:], seq)
	return k
}

func get(db database.KeyValueReader, k []byte, dst interface{}) (bool, error) {
	v, err := db.Get(k)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := Unmarshal(v, dst); err != nil {
		return false, err
	}
	return true, nil
}

func put(db database.KeyValueWriter, k []byte, src interface{}) error {
	b, err := Marshal(src)
	if err != nil {
		return err
	}
	return db.Put(k, b)
}

func GetFeeRegistry(db database.KeyValueReader) (*FeeRegistry, bool, error) {
	var r FeeRegistry
	exists, err := get(db, SingletonKey(feeRegistryAddress), &r)
	if !exists || err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

func PutFeeRegistry(db database.KeyValueWriter, r *FeeRegistry) error {
	return put(db, SingletonKey(feeRegistryAddress), r)
}

func GetVerifierRoster(db database.KeyValueReader) (*VerifierRoster, bool, error) {
	var r VerifierRoster
	exists, err := get(db, SingletonKey(verifiersAddress), &r)
	if !exists || err != nil {
		return nil, false, err
	}
	return &r, true, nil
}

func PutVerifierRoster(db database.KeyValueWriter, r *VerifierRoster) error {
	return put(db, SingletonKey(verifiersAddress), r)
}

// GetPrefixRecord loads the record stored for [prefix]. A stored record whose
// prefix does not re-derive to the address it was read from is rejected.
func GetPrefixRecord(db database.KeyValueReader, prefix string) (*PrefixRecord, bool, error) {
	addr := PrefixAddress(prefix)
	var r PrefixRecord
	exists, err := get(db, RecordKey(addr), &r)
	if !exists || err != nil {
		return nil, false, err
	}
	if PrefixAddress(r.Prefix) != addr {
		return nil, false, fmt.Errorf("%w: %s", ErrAddressMismatch, prefix)
	}
	return &r, true, nil
}

// CreatePrefixRecord stores [r] only if nothing lives at its address yet.
// The Has/Put pair is not atomic on its own: uniqueness relies on callers
// serializing execution (the VM holds its exclusive lock per transaction).
func CreatePrefixRecord(db database.Database, r *PrefixRecord) error {
	k := RecordKey(PrefixAddress(r.Prefix))
	has, err := db.Has(k)
	if err != nil {
		return err
	}
	if has {
		return ErrPrefixAlreadyExists
	}
	return put(db, k, r)
}

func PutPrefixRecord(db database.KeyValueWriter, r *PrefixRecord) error {
	return put(db, RecordKey(PrefixAddress(r.Prefix)), r)
}

// DeletePrefixRecord frees the address so the prefix can be submitted again.
func DeletePrefixRecord(db database.KeyValueDeleter, prefix string) error {
	return db.Delete(RecordKey(PrefixAddress(prefix)))
}

func GetBalance(db database.KeyValueReader, addr ids.ID) (uint64, error) {
	v, err := db.Get(BalanceKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != 8 {
		return 0, ErrInvalidKeyFormat
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetBalance(db database.KeyValueWriter, addr ids.ID, bal uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, bal)
	return db.Put(BalanceKey(addr), b)
}

// ModifyBalance credits ([add]) or debits [change] and returns the new
// balance.
func ModifyBalance(db database.Database, addr ids.ID, add bool, change uint64) (uint64, error) {
	b, err := GetBalance(db, addr)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n, err = smath.Add64(b, change)
	} else {
		n, err = smath.Sub64(b, change)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: bal=%d, change=%d, add=%t (%v)", ErrInsufficientBalance, b, change, add, err)
	}
	return n, SetBalance(db, addr, n)
}

// Transfer debits [from] first so a failed debit never mints a credit.
func Transfer(db database.Database, from ids.ID, to ids.ID, amount uint64) error {
	if _, err := ModifyBalance(db, from, false, amount); err != nil {
		return err
	}
	_, err := ModifyBalance(db, to, true, amount)
	return err
}

func HasTransaction(db database.KeyValueReader, txID ids.ID) (bool, error) {
	return db.Has(PrefixTxKey(txID))
}

func SetTransaction(db database.KeyValueWriter, txID ids.ID, blockTime uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, blockTime)
	return db.Put(PrefixTxKey(txID), b)
}

// EventCount is the number of events appended so far.
func EventCount(db database.KeyValueReader) (uint64, error) {
	v, err := db.Get(eventSeqKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// AppendEvent assigns the next sequence number to [e] and stores it.
func AppendEvent(db database.Database, e *Event) error {
	seq, err := EventCount(db)
	if err != nil {
		return err
	}
	e.Seq = seq
	if err := put(db, EventKey(seq), e); err != nil {
		return err
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq+1)
	return db.Put(eventSeqKey, b)
}

// GetEvents returns up to [limit] events starting at sequence [start].
func GetEvents(db database.Iteratee, start uint64, limit int) ([]*Event, error) {
	cursor := db.NewIteratorWithStartAndPrefix(EventKey(start), []byte{eventPrefix, parser.ByteDelimiter})
	defer cursor.Release()

	events := []*Event{}
	for cursor.Next() && len(events) < limit {
		var e Event
		if _, err := Unmarshal(cursor.Value(), &e); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, cursor.Error()
}

// CompactablePrefixes are the namespaces that grow with usage.
var CompactablePrefixes = []byte{recordPrefix, balancePrefix, eventPrefix, txPrefix}

func CompactablePrefixKey(pfx byte) []byte {
	return []byte{pfx}
}
