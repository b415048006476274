// SPDX-License-Identifier: MIT

// Command uflp generates a random facility location instance, solves it and
// prints the result.
//
//	uflp solve --plants 40 --customers 60 --seed 7 --beta 0.9 -v 1
//	uflp solve --config run.yaml --integral --verify
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
