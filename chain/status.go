// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
)

// Status is the lifecycle state of a prefix record. [None] is never
// persisted; it stands for "no record at this address".
type Status uint8

const (
	None Status = iota
	Pending
	Active
	Rejected
	Inactive
)

func (s Status) String() string {
	switch s {
	case None:
		return "none"
	case Pending:
		return "pending"
	case Active:
		return "active"
	case Rejected:
		return "rejected"
	case Inactive:
		return "inactive"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(text []byte) error {
	for _, c := range []Status{None, Pending, Active, Rejected, Inactive} {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Action names a lifecycle transition.
type Action uint8

const (
	Submit Action = iota
	Approve
	Reject
	UpdateMetadata
	UpdateAuthority
	Deactivate
	Reactivate
	Refund
	RecoverOwner
)

func (a Action) String() string {
	switch a {
	case Submit:
		return "submit"
	case Approve:
		return "approve"
	case Reject:
		return "reject"
	case UpdateMetadata:
		return "updateMetadata"
	case UpdateAuthority:
		return "updateAuthority"
	case Deactivate:
		return "deactivate"
	case Reactivate:
		return "reactivate"
	case Refund:
		return "refund"
	case RecoverOwner:
		return "recoverOwner"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// transitions is the complete set of legal status edges. Anything not listed
// here is rejected by [Transition].
//
// Refund out of Pending is only legal once the review deadline has passed on
// a record that was never approved; [PrefixRecord.Refundable] covers that.
var transitions = map[Action]map[Status]Status{
	Submit:          {None: Pending},
	Approve:         {Pending: Active},
	Reject:          {Pending: Rejected},
	UpdateMetadata:  {Pending: Pending, Active: Pending, Inactive: Inactive},
	UpdateAuthority: {Pending: Pending, Active: Active, Inactive: Inactive},
	Deactivate:      {Active: Inactive},
	Reactivate:      {Inactive: Active},
	Refund:          {Rejected: None, Pending: None},
	RecoverOwner:    {Active: Active, Rejected: Rejected},
}

// Transition returns the status a record in [from] moves to under [a].
func Transition(from Status, a Action) (Status, error) {
	edges, ok := transitions[a]
	if !ok {
		return None, fmt.Errorf("%w: unknown action %s", ErrInvalidPrefixStatus, a)
	}
	to, ok := edges[from]
	if !ok {
		if a == Refund {
			return None, fmt.Errorf("%w: %s", ErrRefundNotAllowed, from)
		}
		return None, fmt.Errorf("%w: cannot %s from %s", ErrInvalidPrefixStatus, a, from)
	}
	return to, nil
}
