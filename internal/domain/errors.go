package domain

import "errors"

var (
	// ErrNotOwner is returned when burn is attempted by an account other than the current owner
	ErrNotOwner = errors.New("caller is not the token owner")

	// ErrNotApproved is returned when a transfer is attempted by an unauthorized caller
	ErrNotApproved = errors.New("caller is not approved to act on this token")

	// ErrTokenExists is returned when attempting to mint a token id that already has an owner
	ErrTokenExists = errors.New("token already exists")

	// ErrTokenNotFound is returned when operating on a token that does not exist
	ErrTokenNotFound = errors.New("token not found")

	// ErrCannotInsert is returned when the single approval slot for a token is already occupied
	ErrCannotInsert = errors.New("token approval slot already occupied")

	// ErrCannotFetchValue is returned when a balance counter is missing where the
	// ownership invariant requires it. It signals a state-consistency fault, not a
	// normal user error; correct operation never reaches it.
	ErrCannotFetchValue = errors.New("balance counter missing for owner")

	// ErrNotAllowed is returned for null-sentinel misuse, self-approval, or an
	// unauthorized approval grant
	ErrNotAllowed = errors.New("operation not allowed")
)
