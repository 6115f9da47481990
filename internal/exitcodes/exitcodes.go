// Package exitcodes defines the exit codes used by ctr.
//
// * Success (0): every fixture passed (or there were none)
// * TestFailure (1): one or more fixtures failed, or the run could not
// start (missing directory or executable, bad arguments)
package exitcodes

const (
	Success     = 0 // All tests pass
	TestFailure = 1 // Test failures and precondition errors
)
