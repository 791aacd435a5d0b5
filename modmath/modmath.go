// Package modmath provides the big-integer modular arithmetic primitives
// the factoring core is built on. Everything operates on non-negative
// arbitrary-precision integers and never mutates its arguments.
package modmath

import (
	"math/big"
)

var one = big.NewInt(1)

// GCD returns the greatest common divisor of x and y via the Euclidean
// algorithm. GCD(x, 0) == x.
func GCD(x, y *big.Int) *big.Int {
	a := new(big.Int).Set(x)
	b := new(big.Int).Set(y)
	for b.Sign() != 0 {
		a, b = b, a.Mod(a, b)
	}
	return a
}

// ModPow computes base^exponent mod modulus by binary square-and-multiply,
// reducing after every step so no intermediate exceeds modulus².
// modulus == 1 yields 0; exponent == 0 yields 1 for any larger modulus.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) <= 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}

// Coprime reports whether gcd(x, y) == 1.
func Coprime(x, y *big.Int) bool {
	return GCD(x, y).Cmp(one) == 0
}

// IsEven reports whether x is divisible by two.
func IsEven(x *big.Int) bool {
	return x.Bit(0) == 0
}
