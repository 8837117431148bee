// Package errors provides structured error handling for the encounter engine.
//
// Errors carry a code, a message, an optional cause, and optional metadata:
//
//	err := errors.NotFound("monster not found").WithMeta("monster_id", id)
//
// The combat engine maps its failure kinds onto codes as follows:
//   - InvalidArgument: malformed dice expressions and bad inputs
//   - NotFound: unknown catalog ids, weapons, abilities, and spells
//   - FailedPrecondition: transitions attempted on a finished session
//   - Unavailable: collaborator (narration / DC) failures; always recovered
//     before reaching a caller
//   - Internal: everything else, including wrapped storage failures
//
// Wrapping preserves the innermost Error code:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load session")
//	}
//
// Check codes with the IsX helpers or GetCode.
package errors
