// Package report renders test runs for people and for tools.
//
// Console prints the classic progress view; Collector gathers the same
// events into a Result for JSON output.
package report
