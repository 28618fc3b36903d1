// Package access implements the retrieval budget for a share.
//
// A Counter starts with a fixed number of allowed uses and tolerated failed
// attempts. Every incoming request is recorded as either a valid attempt
// (the path matched the share URL) or an invalid one, and the counter
// decides, atomically with the bookkeeping, whether to serve the payload,
// report it gone, or report not found.
//
// The counter is the only shared mutable state in the program. Both budgets
// only ever decrease, never below zero, and the transition into a terminal
// state happens exactly once: consuming the last use ends the share
// immediately, while spending the last tolerated failure leaves it active
// until one further invalid request arrives. Termination closes a one-shot
// channel that the server lifecycle waits on.
package access
