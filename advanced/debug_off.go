//go:build !predicatesdebug

package advanced

// Winding checks compile away in release builds. Build with
// -tags predicatesdebug to enable them.
const debugChecks = false
