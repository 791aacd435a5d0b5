package util

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseModulus parses a decimal N from user input and enforces the CLI's
// precondition: a composite number needs N > 3 (the core itself handles
// even N and everything the caller could not know, but 0..3 have no
// non-trivial factor pair worth attempting).
func ParseModulus(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid number input: %q", s)
	}
	if n.Cmp(big.NewInt(4)) < 0 {
		return nil, fmt.Errorf("please enter a composite number greater than 3, got %s", n)
	}
	return n, nil
}

// ParseCeiling parses the optional period-scan ceiling. Empty input means
// no explicit ceiling (the core falls back to N).
func ParseCeiling(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	c, ok := new(big.Int).SetString(s, 10)
	if !ok || c.Sign() <= 0 {
		return nil, fmt.Errorf("invalid period ceiling: %q", s)
	}
	return c, nil
}
