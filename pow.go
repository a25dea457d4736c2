package rpn

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// powPrec is the precision in bits used to compute powers before rounding to
// float32.
const powPrec = 64

// pow32 computes x^y rounded to float32. Special cases follow math.Pow,
// including a NaN result for a negative base with a non-integer exponent.
func pow32(x, y float32) float32 {
	f := math.Pow(float64(x), float64(y))
	switch {
	case !(x > 0), math.IsInf(float64(x), 0):
		return float32(f)
	case math.IsInf(float64(y), 0), math.IsNaN(float64(y)):
		return float32(f)
	case f == 0, math.IsInf(f, 0), math.IsNaN(f):
		// Underflow or overflow in float64 is certainly out of range for
		// float32 as well.
		return float32(f)
	}
	return bigpow(x, y, f)
}

// bigpow computes x^y for finite, positive x and a finite result in
// extended precision. If bigfloat reports a domain error, the result is the
// float64 approximation.
func bigpow(x, y float32, approx float64) (r float32) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		if _, ok := e.(big.ErrNaN); !ok {
			panic(e)
		}
		r = float32(approx)
	}()
	bx := new(big.Float).SetPrec(powPrec).SetFloat64(float64(x))
	by := new(big.Float).SetPrec(powPrec).SetFloat64(float64(y))
	z := new(big.Float).SetPrec(powPrec)
	// Pow does not always write to z, e.g. when y is 0 or 1.
	r, _ = bigfloat.Pow(z, bx, by).Float32()
	return r
}
