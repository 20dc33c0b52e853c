package main

import (
	"errors"
	"fmt"
	"os"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var failed *validationFailed
		if !errors.As(err, &failed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
