// Command snipstorm is a debugging front-end for the snippet engine: it
// builds one-off definitions and reports how they match and expand against
// sample text.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
