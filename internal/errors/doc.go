// Package errors provides structured errors for the rpg-table bot.
//
// Every error returned by the engine, the store and the orchestrators is an
// *Error carrying a Code, a user-facing Message and optional Meta. The chat
// handler renders Message directly, so messages are written for players.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("player is not registered")
//	err := errors.OutOfRangef("amount must be positive, got %d", amount)
//
// Adding metadata:
//
//	err := errors.FailedPrecondition("not enough money").
//	    WithMeta(errors.MetaReason, errors.ReasonInsufficientFunds).
//	    WithMeta("balance", balance)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to persist snapshot")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // player has no profile
//	}
//
// # Taxonomy
//
//   - InvalidArgument: malformed dice notation or attribute pairs
//   - ResourceExhausted: roll exceeds configured limits
//   - NotFound: unregistered player, empty initiative board
//   - AlreadyExists: duplicate registration
//   - OutOfRange: non-positive HP max or money amount
//   - FailedPrecondition: insufficient funds or quantity (see MetaReason)
//   - DeadlineExceeded: confirmation not received in time
//   - Unavailable: snapshot could not be persisted
//   - Internal: anything else
package errors
