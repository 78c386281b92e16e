// Package gcd содержит вычисление наибольшего общего делителя.
package gcd

import "github.com/cockroachdb/errors"

// GCD возвращает наибольший общий делитель n и m алгоритмом Евклида.
//
// Оба аргумента должны быть ненулевыми: вызывающая сторона отсекает нули
// заранее, поэтому ноль здесь считается ошибкой программиста и приводит к панике.
func GCD(n, m uint64) uint64 {
	if n == 0 || m == 0 {
		panic(errors.AssertionFailedf("gcd: zero operand (n=%d, m=%d)", n, m))
	}

	for m != 0 {
		if m < n {
			n, m = m, n
		}
		m %= n
	}
	return n
}
