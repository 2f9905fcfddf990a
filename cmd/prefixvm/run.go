// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/prefixvm/vm"
)

const shutdownTimeout = 10 * time.Second

func runFunc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(cfg.logLevel, log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	g, err := loadGenesis(cfg.genesisFile)
	if err != nil {
		return err
	}
	db, err := openDB(cfg.dbDir)
	if err != nil {
		return err
	}
	pvm, err := vm.New(cfg.vm, g, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	handlers, err := pvm.CreateHandlers()
	if err != nil {
		_ = pvm.Shutdown()
		return err
	}
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(endpoint, h)
	}
	server := &http.Server{
		Addr:              cfg.addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("serving", "addr", cfg.addr, "endpoint", vm.PublicEndpoint, "magic", g.Magic)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ectx.Done()
		log.Info("shutting down")
		sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer scancel()
		serr := server.Shutdown(sctx)
		if err := pvm.Shutdown(); err != nil {
			return err
		}
		return serr
	})
	return eg.Wait()
}

func openDB(dir string) (database.Database, error) {
	if dir == "" {
		log.Warn("no database directory, state will not persist")
		return memdb.New(), nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return leveldb.New(dir, nil, logging.NoLog{})
}
