// Command palette derives color palettes and scales in the terminal.
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "palette: %s\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
