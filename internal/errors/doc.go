// Package errors provides structured error handling for the destiny API.
//
// Errors carry a Code modeled on the gRPC status vocabulary, a
// human-readable message, an optional cause, and optional metadata. Codes
// map to HTTP statuses for the API surface via Code.HTTPStatus.
//
// Typical usage:
//
//	if input.CharacterID == "" {
//	    return nil, errors.InvalidArgument("character ID is required")
//	}
//
//	result, err := repo.Get(ctx, id)
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to load action result")
//	}
//
// Wrap preserves the code of an existing *Error so NotFound from a
// repository stays NotFound at the handler. Callers branch on codes with
// the Is* helpers (errors.IsNotFound, errors.IsOutOfRange, ...), never by
// string matching.
package errors
