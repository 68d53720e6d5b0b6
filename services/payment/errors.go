// File: services/payment/errors.go
package payment

import "errors"

var (
	// ErrTransactionNotFound indicates no transaction matches the given ID.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDisputeNotFound indicates no dispute matches the given ID.
	ErrDisputeNotFound = errors.New("dispute not found")
	// ErrNotTransactionOwner indicates an action on another student's payment.
	ErrNotTransactionOwner = errors.New("transaction belongs to another user")
	// ErrNotDisputable indicates the transaction's status does not allow a dispute.
	ErrNotDisputable = errors.New("transaction cannot be disputed")
	// ErrDisputeClosed indicates a write on a dispute that is no longer open.
	ErrDisputeClosed = errors.New("dispute is already closed")
	// ErrUnknownOutcome indicates an unsupported resolution outcome.
	ErrUnknownOutcome = errors.New("unknown dispute outcome")
)
