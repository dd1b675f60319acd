package check

import (
	"fmt"
	"runtime"
)

// Location is a source position supplied by the caller of a check.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// String formats the location as file:line.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller returns the location of the function skip frames above the caller
// of Caller. Caller(0) is the line that called Caller.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???", Line: 0}
	}
	return Location{File: file, Line: line}
}
