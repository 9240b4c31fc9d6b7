//go:build !sanddebug

package sand

const debugChecks = false
