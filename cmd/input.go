package cmd

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/qfactor/QFactor-core/util"
)

// readModuli resolves the numbers to factor: from the positional argument
// when present, otherwise from standard input (with a prompt when stdin is
// a terminal).
func readModuli(arg string) ([]*big.Int, error) {
	if strings.TrimSpace(arg) == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println("Enter the number (N) to factor:")
		}
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("failed to read N from stdin: %w", err)
		}
		arg = line
	}
	return parseModuli(arg)
}

func parseModuli(arg string) ([]*big.Int, error) {
	var moduli []*big.Int
	for _, part := range strings.Split(arg, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		n, err := util.ParseModulus(part)
		if err != nil {
			return nil, err
		}
		moduli = append(moduli, n)
	}
	if len(moduli) == 0 {
		return nil, fmt.Errorf("no number to factor")
	}
	return moduli, nil
}
