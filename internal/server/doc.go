// Package server serves one payload over HTTP until its budgets are spent.
//
// Routing
//
//	GET /{prefix}/{filename}    200 with the payload while uses remain,
//	                            410 once the share is terminal
//	anything else               404, and one tolerated failure is spent
//
// Path comparison is exact; a correct prefix with the wrong filename, a
// partial prefix, "/" and browser probes such as /favicon.ico are all
// invalid attempts. Validity is decided by the path alone.
//
// # Lifecycle
//
// The server binds an OS-assigned ephemeral port on the given address and
// serves requests concurrently. When the access counter signals exhaustion,
// or the run context is cancelled by an interrupt, it stops accepting
// connections, lets in-flight responses finish within a bounded grace
// period, and returns. Exhaustion is not an error; Run returns nil.
package server
