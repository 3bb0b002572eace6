package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/snarkcover/builder"
)

var errNotInteger = errors.New("not an integer")

// interactive asks for the family and n on o.in, then writes the report.
func (o *rootOptions) interactive(ctx context.Context) error {
	sc := bufio.NewScanner(o.in)

	fmt.Fprintln(o.out, "Select the type of Snark graph to analyze:")
	for i, f := range builder.Families {
		fmt.Fprintf(o.out, "%d: %s Snark\n", i+1, f)
	}
	fmt.Fprint(o.out, "Type your choice (1 or 2): ")
	family, err := builder.ParseFamily(readLine(sc))
	if err != nil {
		return o.fail(err)
	}

	fmt.Fprintf(o.out, "Enter the index 'n' for the graph %s: ", family)
	n, err := parseN(readLine(sc))
	if err != nil {
		return o.fail(err)
	}

	return o.report(ctx, &solveOptions{instanceOptions: instanceOptions{family: family, n: n}})
}

// readLine returns the next trimmed input line, or "" at end of input.
func readLine(sc *bufio.Scanner) string {
	if !sc.Scan() {
		return ""
	}

	return strings.TrimSpace(sc.Text())
}

// parseN converts prompt input to n. Non-integer input is an invalid
// parameter as well as errNotInteger.
func parseN(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("n=%q: %w: %w", s, errNotInteger, builder.ErrInvalidParameter)
	}

	return n, nil
}
