// Package check is the assertion library.
//
// Every check takes the caller's source location and typed operands. A
// violated check reports a diagnostic through the Reporter and moves the
// current test to Fail. A satisfied check has no observable effect.
// Checks never abort the test body.
//
// Checker is the location-explicit core used by the script bridge. T is the
// facade handed to native test bodies; it captures the location of the
// calling line itself:
//
//	func checkIntEqual(t *check.T) {
//		t.Equal(33, 33)
//		t.NotEqual(-56, 56)
//	}
package check
