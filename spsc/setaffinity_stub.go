//go:build !linux || tinygo

// setaffinity_stub.go
//
// No-op affinity fall-back for platforms without sched_setaffinity(2):
// macOS, Windows, the BSDs, TinyGo and WASM targets.  Keeps the call site
// unconditional; the compiler inlines this away.

package spsc

// setAffinity is a no-op on unsupported targets.
func setAffinity(cpu int) {}
