package modmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bi(v int64) *big.Int { return big.NewInt(v) }

// ──────── GCD ────────

func TestGCD_KnownPairs(t *testing.T) {
	cases := []struct {
		x, y, want int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{100, 10, 10},
		{270, 192, 6},
		{1, 1, 1},
		{997, 997, 997},
	}
	for _, c := range cases {
		got := GCD(bi(c.x), bi(c.y))
		assert.Equal(t, 0, got.Cmp(bi(c.want)), "gcd(%d, %d)", c.x, c.y)
	}
}

func TestGCD_ZeroIdentity(t *testing.T) {
	assert.Equal(t, 0, GCD(bi(42), bi(0)).Cmp(bi(42)))
	assert.Equal(t, 0, GCD(bi(0), bi(42)).Cmp(bi(42)))
	assert.Equal(t, 0, GCD(bi(0), bi(0)).Sign())
}

func TestGCD_DividesBothInputs(t *testing.T) {
	pairs := [][2]int64{{2 * 3 * 5 * 7, 3 * 5 * 11}, {4819, 61}, {65537, 257}, {987654, 123456}}
	for _, p := range pairs {
		x, y := bi(p[0]), bi(p[1])
		g := GCD(x, y)
		require.Positive(t, g.Sign())
		assert.Zero(t, new(big.Int).Mod(x, g).Sign(), "g must divide x")
		assert.Zero(t, new(big.Int).Mod(y, g).Sign(), "g must divide y")
	}
}

func TestGCD_MatchesReference(t *testing.T) {
	for x := int64(0); x < 40; x++ {
		for y := int64(0); y < 40; y++ {
			if x == 0 && y == 0 {
				continue
			}
			want := new(big.Int).GCD(nil, nil, bi(x), bi(y))
			got := GCD(bi(x), bi(y))
			require.Equal(t, 0, got.Cmp(want), "gcd(%d, %d)", x, y)
		}
	}
}

func TestGCD_DoesNotMutateArguments(t *testing.T) {
	x, y := bi(270), bi(192)
	GCD(x, y)
	assert.Equal(t, 0, x.Cmp(bi(270)))
	assert.Equal(t, 0, y.Cmp(bi(192)))
}

// ──────── ModPow ────────

func TestModPow_KnownValues(t *testing.T) {
	cases := []struct {
		base, exp, mod, want int64
	}{
		{2, 10, 1000, 24},
		{3, 4, 5, 1},
		{7, 0, 13, 1},
		{0, 5, 7, 0},
		{5, 3, 13, 8},
		{2, 4, 16, 0},
		{10, 18, 19, 1}, // Fermat: 19 prime
	}
	for _, c := range cases {
		got := ModPow(bi(c.base), bi(c.exp), bi(c.mod))
		assert.Equal(t, 0, got.Cmp(bi(c.want)), "%d^%d mod %d", c.base, c.exp, c.mod)
	}
}

func TestModPow_ModulusOne(t *testing.T) {
	assert.Zero(t, ModPow(bi(12345), bi(678), bi(1)).Sign())
	assert.Zero(t, ModPow(bi(0), bi(0), bi(1)).Sign())
}

func TestModPow_MatchesReference(t *testing.T) {
	for base := int64(0); base < 12; base++ {
		for exp := int64(0); exp < 12; exp++ {
			for mod := int64(1); mod < 12; mod++ {
				want := new(big.Int).Exp(bi(base), bi(exp), bi(mod))
				got := ModPow(bi(base), bi(exp), bi(mod))
				require.Equal(t, 0, got.Cmp(want),
					"%d^%d mod %d: want %s got %s", base, exp, mod, want, got)
			}
		}
	}
}

func TestModPow_LargeOperands(t *testing.T) {
	base, _ := new(big.Int).SetString("98765432109876543210", 10)
	exp, _ := new(big.Int).SetString("12345678901234567890", 10)
	mod, _ := new(big.Int).SetString("10000000000000000007", 10)

	want := new(big.Int).Exp(base, exp, mod)
	got := ModPow(base, exp, mod)
	assert.Equal(t, 0, got.Cmp(want))
}

func TestModPow_DoesNotMutateArguments(t *testing.T) {
	base, exp, mod := bi(7), bi(19), bi(31)
	ModPow(base, exp, mod)
	assert.Equal(t, 0, base.Cmp(bi(7)))
	assert.Equal(t, 0, exp.Cmp(bi(19)))
	assert.Equal(t, 0, mod.Cmp(bi(31)))
}

// ──────── Coprime / IsEven ────────

func TestCoprime(t *testing.T) {
	assert.True(t, Coprime(bi(8), bi(15)))
	assert.True(t, Coprime(bi(61), bi(79)))
	assert.False(t, Coprime(bi(6), bi(15)))
	assert.False(t, Coprime(bi(0), bi(15)))
}

func TestIsEven(t *testing.T) {
	assert.True(t, IsEven(bi(0)))
	assert.True(t, IsEven(bi(4819*2)))
	assert.False(t, IsEven(bi(4819)))
}
