// Package fn provides generic function combinators: composition, currying,
// and partial application.
//
// Composed functions carry no state and are indistinguishable from
// hand-written functions of the same signature. Mixed-type chains use the
// arity-indexed Pipe2..Pipe5 family so a mismatched link is a compile
// error, not a runtime one; single-type chains can use the variadic Pipe.
package fn
