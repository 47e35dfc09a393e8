// runsheetctl is the operator CLI for a runsheet server.
package main

import (
	"os"

	"github.com/codeready-toolchain/runsheet/pkg/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
