// Package functional provides the Maybe and Either containers, function and
// predicate combinators, and tuples.
//
// Maybe models a possibly absent value with null-aware mapping; Either models
// a computation that either failed (Left) or succeeded (Right). Both expose
// same-type operations as methods and type changing operations as package
// functions (MapMaybe, ChainEither, ...), since Go methods cannot introduce
// type parameters.
//
// Extraction from the empty side panics with an *errors.AppError coded
// ILLEGAL_EXTRACTION. TryGet, GetOrElse and TryCatch are the non-panicking
// alternatives.
package functional
