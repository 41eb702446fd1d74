// tsan-races - ThreadSanitizer race report grouper
//
// tsan-races reads the log of a CPython test run under ThreadSanitizer,
// groups the race reports by their first meaningful stack frame, and
// renders an aggregated report.
package main

import (
	"os"

	"github.com/mpage/cpython-tsan-races/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
