// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"errors"
)

var (
	ErrInvalidEmptyTx = errors.New("invalid empty transaction")
	ErrTxTooLarge     = errors.New("transaction too large")
	ErrRateLimited    = errors.New("too many requests")
	ErrShutdown       = errors.New("vm is shut down")
	ErrInvalidLimit   = errors.New("invalid limit")
)
