package services

import "errors"

// Typed failures surfaced by the ticket ledger and the winner selector.
// Controllers map these to distinct user-visible messages; none of them are
// retried automatically.
var (
	// ErrDrawNotFound means the draw id does not exist.
	ErrDrawNotFound = errors.New("draw not found")

	// ErrDrawClosed means a purchase was attempted against a draw that is
	// not open for entries (completed or not yet started).
	ErrDrawClosed = errors.New("draw is not open for entries")

	// ErrAlreadyEntered means the user already holds a ticket in this draw.
	ErrAlreadyEntered = errors.New("user already has a ticket in this draw")

	// ErrNumberTaken means the chosen ticket number is already claimed in
	// this draw.
	ErrNumberTaken = errors.New("ticket number already taken in this draw")

	// ErrInvalidTicketNumber means the number is outside 1..TotalSlots.
	ErrInvalidTicketNumber = errors.New("ticket number is out of range")

	// ErrInvalidPrice means the price does not match any configured tier.
	ErrInvalidPrice = errors.New("price does not match a configured tier")

	// ErrInsufficientBalance means the buyer's wallet cannot cover the price.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrPurchaseFailed wraps any other storage failure during purchase.
	ErrPurchaseFailed = errors.New("ticket purchase failed")

	// ErrNoParticipants means winner selection was attempted on a draw with
	// zero tickets.
	ErrNoParticipants = errors.New("draw has no participants")

	// ErrAlreadyCompleted means winner selection was attempted on a draw
	// that is already completed.
	ErrAlreadyCompleted = errors.New("draw is already completed")

	// ErrWinnerPersistFailed means the completion write failed after a
	// winner was chosen in memory; nothing was sent and the chosen winner
	// is discarded.
	ErrWinnerPersistFailed = errors.New("failed to persist draw winner")
)
