// Package outcome holds the per-test result state machine and the aggregate
// counters of a run.
//
// A Tracker is the single "current test" context shared by the native runner
// and the script bridge. Exactly one test is active at a time:
//
//	tracker.Begin()     // state = Pass
//	body(...)           // assertions may call tracker.Fail()
//	tracker.Classify()  // counters updated, observer notified, state = Pass
//
// Fail is sticky for the duration of one test. Ignore is only ever set
// explicitly, never by an assertion.
//
// Tracker is not safe for concurrent use. Independent runs that want to
// execute in parallel must each own a Tracker and merge with Counters.Add.
package outcome
