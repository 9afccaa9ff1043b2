package lead

import "errors"

var (
	ErrLeadNotFound        = errors.New("lead not found")
	ErrAlreadyClaimed      = errors.New("lead already claimed")
	ErrNotClaimed          = errors.New("lead has not been claimed")
	ErrNotLeadOwner        = errors.New("lead is claimed by another rep")
	ErrVerificationPending = errors.New("verification window has not elapsed")
	ErrAlreadyConverted    = errors.New("lead already converted")
	ErrInvalidStatus       = errors.New("lead cannot change to that status")
)
