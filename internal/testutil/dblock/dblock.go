// Package dblock serializes test packages that share the database behind
// DATABASE_URL. Packages truncate tables between cases, so two of them
// running in parallel would corrupt each other's fixtures.
package dblock

import (
	"net"
	"time"
)

const lockAddr = "127.0.0.1:47433"

// Acquire blocks until this process holds the cross-package lock and
// returns a release func. The lock is a loopback TCP listener, which the
// OS reclaims even if a test binary crashes.
func Acquire() func() {
	for {
		ln, err := net.Listen("tcp", lockAddr)
		if err == nil {
			return func() { ln.Close() }
		}
		time.Sleep(50 * time.Millisecond)
	}
}
