// Package seclog emits the non-fatal security advisories spec.md §7 calls
// for: weak key/domain-parameter strength, hashing past a hash's domain
// bound, and requesting a security strength above an algorithm's maximum.
// It is deliberately tiny — a formatted write to a package-level io.Writer —
// matching the ambient level the rest of this module's leaf packages use
// rather than pulling in a structured-logging library no pack example wires
// into a pure computational library.
package seclog

import (
	"fmt"
	"io"
	"os"
)

// Output is where Warnf writes. It defaults to os.Stderr; tests that don't
// want warnings cluttering output can redirect it to io.Discard.
var Output io.Writer = os.Stderr

// Warnf writes a non-fatal security warning to Output, prefixed
// "cryptogo: warning: ". Errors writing to Output are ignored: a failed
// diagnostic write must never fail the operation that triggered it.
func Warnf(format string, args ...any) {
	fmt.Fprintf(Output, "cryptogo: warning: "+format+"\n", args...)
}
