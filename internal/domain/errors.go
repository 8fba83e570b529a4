package domain

import (
	"errors"
	"fmt"

	"github.com/branchpay/walletcore/pkg/money"
)

// Errors returned to callers carry a stable code and human-readable
// message; stack traces stay in logs.

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError is a caller-fault input error, surfaced verbatim.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// InsufficientBalanceError reports a wallet debit that exceeds the
// spendable balance, with the numeric shortfall in minor units.
type InsufficientBalanceError struct {
	Shortfall int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: short by %.2f", money.ToMajor(e.Shortfall))
}

// TransitionError is a settlement state-machine violation. It usually
// indicates a race or a stale client, so callers always log it.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid settlement transition from %s to %s", e.From, e.To)
}

// ConfigError is an operational misconfiguration, fatal to the
// specific operation. Money-moving paths never default past it.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
