// Package engine runs every registered test and produces the run summary.
//
// A run is strictly sequential:
//
//  1. the reporter prints its header
//  2. every registry slot runs in registration order (Begin, body, Classify)
//  3. each extra Phase runs in the order it was added (the script bridge is
//     one); a phase error is reported and the run continues
//  4. the reporter prints the counters and RunAll returns the failed count
//
// The registry is never consumed. Calling RunAll again reruns the same slots
// against the same tracker, so the counters accumulate.
//
// # Run identity
//
// Every RunAll is stamped with a run ID (UUIDv7 by default) and a sequence
// number counting the runs of this engine. Both appear in log lines and in the
// JSON summary so repeated runs in one process can be told apart.
package engine
