package models

import "errors"

var (
	ErrNotFound               = errors.New("not found")
	ErrNotAMember             = errors.New("user is not a member of the group")
	ErrSplitMismatch          = errors.New("shares do not sum to the expense total")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvariantViolation     = errors.New("ledger invariant violated")
	ErrTransactionAborted     = errors.New("transaction aborted")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInvalidRequest         = errors.New("invalid request")
	ErrGroupArchived          = errors.New("group is archived")
)
