package search

import "math/big"

// epsilon is the crossing-bias adjustment from spec §4.5, carried over
// unchanged from the original Python's DECIMAL_ADJUSTMENT_FACTOR =
// Decimal(0.008) (example/modules/make_puzzles.py of the original
// source, under getcontext().prec = 32). It exists purely so that the
// divide-and-floor walk below produces exactly B ticks across C steps
// when B is evenly divisible by C.
var epsilon = big.NewRat(8, 1000)

// Budget is the remaining leaf count a subtree is permitted to emit.
// The zero value is not valid; use Zero, Unlimited or FromInt.
type Budget struct {
	unlimited bool
	value     *big.Int // nil only when unlimited
}

// Unlimited returns the sentinel budget meaning "emit every leaf".
func Unlimited() Budget { return Budget{unlimited: true} }

// Zero returns the budget meaning "emit nothing, return immediately".
func Zero() Budget { return FromInt(0) }

// FromInt builds a budget for a known, non-negative leaf count.
func FromInt(n int64) Budget { return Budget{value: big.NewInt(n)} }

// FromBigInt builds a budget from an arbitrary-precision non-negative count.
func FromBigInt(n *big.Int) Budget { return Budget{value: new(big.Int).Set(n)} }

// IsUnlimited reports the −1 sentinel.
func (b Budget) IsUnlimited() bool { return b.unlimited }

// IsZero reports the "stop immediately" case.
func (b Budget) IsZero() bool { return !b.unlimited && b.value.Sign() == 0 }

// Ceil returns ⌈B⌉ as an int, for capping candidate enumeration. Callers
// must not call this on an unlimited budget.
func (b Budget) Ceil() int {
	if b.unlimited {
		panic("search: Ceil called on unlimited budget")
	}
	return int(b.value.Int64())
}

// Int64 returns the budget's value as an int64. Callers must not call
// this on an unlimited budget.
func (b Budget) Int64() int64 {
	if b.unlimited {
		panic("search: Int64 called on unlimited budget")
	}
	return b.value.Int64()
}

// Distribute splits b across c ≥ 1 surviving child candidates so that
// the sum of the returned budgets equals b (when b is a positive
// integer), following the rule in spec §4.5:
//
//  1. b == −1 (unlimited): every child gets −1.
//  2. b >= c: compute step = (b + ε) / c as an exact rational; child i
//     gets ⌊step·(i+1)⌋ − ⌊step·i⌋.
//  3. b < c: the first ⌊b⌋ children get 1, the rest get 0.
func Distribute(b Budget, c int) []Budget {
	if c <= 0 {
		return nil
	}
	out := make([]Budget, c)

	if b.unlimited {
		for i := range out {
			out[i] = Unlimited()
		}
		return out
	}

	if b.value.Sign() == 0 {
		for i := range out {
			out[i] = Zero()
		}
		return out
	}

	cBig := big.NewInt(int64(c))
	if b.value.Cmp(cBig) >= 0 {
		step := new(big.Rat).SetInt(b.value)
		step.Add(step, epsilon)
		step.Quo(step, new(big.Rat).SetInt(cBig))

		prevFloor := big.NewInt(0)
		for i := 0; i < c; i++ {
			mult := new(big.Rat).Mul(step, big.NewRat(int64(i+1), 1))
			curFloor := floorRat(mult)
			count := new(big.Int).Sub(curFloor, prevFloor)
			out[i] = FromBigInt(count)
			prevFloor = curFloor
		}
		return out
	}

	for i := 0; i < c; i++ {
		if big.NewInt(int64(i)).Cmp(b.value) < 0 {
			out[i] = FromInt(1)
		} else {
			out[i] = Zero()
		}
	}
	return out
}

// floorRat returns the floor of a non-negative rational as a big.Int.
// big.Int.Div implements Euclidean division, which for a non-negative
// numerator and positive denominator coincides with the mathematical
// floor.
func floorRat(r *big.Rat) *big.Int {
	return new(big.Int).Div(r.Num(), r.Denom())
}
