// Command snarkcover builds Goldberg and Flower snarks and computes a
// minimum vertex cover of them through the gini-backed integer programming
// engine.
//
//	snarkcover                               interactive prompt
//	snarkcover solve --family flower -n 5    one report
//	snarkcover graph --family goldberg -n 3 --format graph6
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cmd := newRootCmd(os.Stdin, os.Stdout, logger)
	if err := cmd.Execute(); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
