package math

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNegativeNumber is returned when a factorial is requested for a
// negative input.
var ErrNegativeNumber = errors.New("factorial is not defined for negative numbers")

// MaxFactorialInt64 is the largest n for which Factorial fits in a
// 64-bit int. Beyond it the result wraps; use FactorialBig for exact
// values.
const MaxFactorialInt64 = 20

// Factorial calculates the factorial of a given non-negative integer.
// Negative input yields ErrNegativeNumber before any computation.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeNumber
	}
	if n == 0 || n == 1 {
		return 1, nil
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// FactorialBig calculates the factorial of a given non-negative integer
// with arbitrary precision, so results stay exact past MaxFactorialInt64.
func FactorialBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeNumber
	}
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result, nil
}
