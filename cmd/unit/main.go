// unit runs the harness's built-in test suites and any Lua tests in the
// working directory.
//
// Usage:
//
//	unit -t              run everything; exit status is the failed count
//	unit test [flags]    run everything; exit 1 on failures
//	unit list            show what would run
package main

import (
	"os"

	"github.com/awesomekyle/unit-test/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
