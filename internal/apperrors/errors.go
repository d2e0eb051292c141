package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation,
// e.g. releasing an escrow they are not the seller of.
var ErrForbidden = errors.New("operation not permitted")

// ErrConflict indicates that the target entity already left the state the
// operation requires (order no longer OPEN, escrow no longer PENDING,
// acceptor is the order owner).
var ErrConflict = errors.New("conflicting state transition")

// ErrInsufficientFunds indicates that a wallet balance is below the requested debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNoData indicates that a derived computation has no records to work from,
// e.g. the trailing-window exchange rate with an empty conversion ledger.
var ErrNoData = errors.New("no data available")

// ErrUpstream indicates that an external collaborator (market data, gold
// quotes, geolocation, classifier, identity provider) was unreachable or
// returned a malformed response. Upstream failures never mutate ledger state.
var ErrUpstream = errors.New("upstream provider failure")
