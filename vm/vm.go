// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm executes prefix registration transactions against a database,
// one atomic unit per transaction, and serves the JSON-RPC API.
package vm

import (
	"net/http"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/cache"
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"
	"golang.org/x/time/rate"

	"github.com/ava-labs/prefixvm/chain"
)

const (
	Name           = "prefixvm"
	PublicEndpoint = "/public"
)

type VM struct {
	config  Config
	genesis *chain.Genesis
	db      database.Database
	clock   func() time.Time

	// Held exclusively while a transaction executes so every operation
	// observes the committed result of the previous one.
	execLock sync.RWMutex
	closed   bool

	// prefix -> *chain.PrefixRecord
	records *cache.LRU

	stop        chan struct{}
	doneCompact chan struct{}
}

// New loads [g] into [db] (once) and returns a VM ready to execute
// transactions. The VM owns [db] and closes it on [Shutdown].
func New(config Config, g *chain.Genesis, db database.Database) (*VM, error) {
	if err := g.Verify(); err != nil {
		return nil, err
	}
	vdb := versiondb.New(db)
	if err := g.Load(vdb); err != nil {
		vdb.Abort()
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}

	vm := &VM{
		config:  config,
		genesis: g,
		db:      db,
		clock:   time.Now,
		records: &cache.LRU{Size: config.RecordCacheSize},
		stop:    make(chan struct{}),
	}
	if config.CompactInterval > 0 {
		vm.doneCompact = make(chan struct{})
		go vm.compact()
	}
	log.Info("initialized prefixvm", "magic", g.Magic, "pendingExpiry", g.PendingExpiry)
	return vm, nil
}

func (vm *VM) now() uint64 {
	return uint64(vm.clock().Unix())
}

// Submit executes [tx] as one atomic unit: either every write it makes is
// committed or none is.
func (vm *VM) Submit(tx *chain.Transaction) error {
	vm.execLock.Lock()
	defer vm.execLock.Unlock()

	if vm.closed {
		return ErrShutdown
	}
	blockTime := vm.now()
	vdb := versiondb.New(vm.db)
	if err := tx.Execute(vm.genesis, vdb, blockTime); err != nil {
		vdb.Abort()
		log.Debug("rejected tx", "id", tx.ID(), "type", txType(tx), "err", err)
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}
	// Records touched by the transaction may be cached.
	vm.records.Flush()
	log.Info("executed tx", "id", tx.ID(), "type", txType(tx), "sender", tx.GetSender(), "t", blockTime)
	return nil
}

func (vm *VM) Shutdown() error {
	vm.execLock.Lock()
	if vm.closed {
		vm.execLock.Unlock()
		return nil
	}
	vm.closed = true
	vm.execLock.Unlock()

	close(vm.stop)
	if vm.doneCompact != nil {
		<-vm.doneCompact
	}
	vm.execLock.Lock()
	defer vm.execLock.Unlock()
	return vm.db.Close()
}

// CreateHandlers returns the JSON-RPC handlers keyed by endpoint.
func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint: vm.limit(server),
	}, nil
}

// limit rejects requests beyond the configured rate with 429.
func (vm *VM) limit(h http.Handler) http.Handler {
	if vm.config.RequestsPerSecond <= 0 {
		return h
	}
	l := rate.NewLimiter(rate.Limit(vm.config.RequestsPerSecond), vm.config.RequestBurst)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow() {
			http.Error(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}
		h.ServeHTTP(w, r)
	})
}
