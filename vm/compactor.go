// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"time"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/prefixvm/chain"
)

// compact walks the growing namespaces one per tick until [vm.stop] closes.
func (vm *VM) compact() {
	log.Debug("starting compaction loop")
	defer close(vm.doneCompact)

	t := time.NewTimer(vm.config.CompactInterval)
	defer t.Stop()

	prefixes := chain.CompactablePrefixes
	currentPrefix := 0

	for {
		select {
		case <-t.C:
		case <-vm.stop:
			return
		}

		// Compact next range
		start := time.Now()
		rangeStart := chain.CompactablePrefixKey(prefixes[currentPrefix])
		rangeEnd := chain.CompactablePrefixKey(prefixes[currentPrefix] + 1)
		vm.execLock.RLock()
		err := vm.db.Compact(rangeStart, rangeEnd)
		vm.execLock.RUnlock()
		if err != nil {
			log.Error("unable to compact prefix range", "start", rangeStart, "stop", rangeEnd, "err", err)
		} else {
			log.Debug("compacted prefix", "prefix", rangeStart, "t", time.Since(start))
		}

		// Update prefix compaction index
		currentPrefix++
		if currentPrefix > len(prefixes)-1 {
			currentPrefix = 0
		}

		t.Reset(vm.config.CompactInterval)
	}
}
