//go:build sanddebug

package sand

// debugChecks enables the per-tick invariant walk.
const debugChecks = true
