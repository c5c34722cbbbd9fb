// Package sentinel provides a const-declarable error type for sentinel errors.
//
// Sentinel errors declared with errors.New are package-level variables that
// could be reassigned. Error is a string-based error type usable in const
// declarations, keeping sentinels immutable while remaining compatible with
// errors.Is across wrapped error chains.
package sentinel
