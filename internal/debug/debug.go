package debug

import (
	"fmt"
	"os"
)

var enabled bool

// SetEnabled turns debug output on or off. Off by default.
func SetEnabled(on bool) {
	enabled = on
}

func DPrintln(a ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintln(os.Stderr, a...)
}

func DPrintf(format string, a ...interface{}) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
}
