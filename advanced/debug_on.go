//go:build predicatesdebug

package advanced

const debugChecks = true
