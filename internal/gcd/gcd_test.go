package gcd

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		m    uint64
		want uint64
	}{
		{name: "Common divisor", n: 48, m: 18, want: 6},
		{name: "Coprime", n: 17, m: 5, want: 1},
		{name: "Equal values", n: 42, m: 42, want: 42},
		{name: "One divides the other", n: 7, m: 21, want: 7},
		{name: "Ones", n: 1, m: 1, want: 1},
		{name: "Large values", n: 2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23, m: 2 * 5 * 23 * 29 * 31, want: 2 * 5 * 23},
		{name: "Max uint64 with itself", n: math.MaxUint64, m: math.MaxUint64, want: math.MaxUint64},
		{name: "Max uint64 and its factor", n: math.MaxUint64, m: 65537, want: 65537},
		{name: "Consecutive Fibonacci numbers", n: 12200160415121876738, m: 7540113804746346429, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GCD(tt.n, tt.m))
		})
	}
}

func TestGCDProperties(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 6, 9, 12, 17, 18, 25, 48, 100, 144, 1000, 1024, 9973, 65536, 1 << 40, math.MaxUint64}

	for _, n := range values {
		assert.Equal(t, n, GCD(n, n), "gcd(n, n) должен быть равен n для n=%d", n)

		for _, m := range values {
			got := GCD(n, m)

			// Коммутативность
			assert.Equal(t, got, GCD(m, n), "gcd(%d, %d) != gcd(%d, %d)", n, m, m, n)

			// Результат делит оба аргумента
			require.NotZero(t, got)
			assert.Zero(t, n%got, "%d не делит %d", got, n)
			assert.Zero(t, m%got, "%d не делит %d", got, m)

			// После деления на НОД аргументы взаимно просты, значит больше делителя нет
			assert.Equal(t, uint64(1), GCD(n/got, m/got), "gcd(%d, %d) не наибольший", n, m)
		}
	}
}

func TestGCDPanicsOnZero(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		m    uint64
	}{
		{name: "Zero n", n: 0, m: 5},
		{name: "Zero m", n: 5, m: 0},
		{name: "Both zero", n: 0, m: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.IsAssertionFailure(err))
			}()
			GCD(tt.n, tt.m)
		})
	}
}

func BenchmarkGCD(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GCD(12200160415121876738, 7540113804746346429)
	}
}
