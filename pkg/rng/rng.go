// Package rng provides the randomness primitives used by the simulation:
// a process-wide source plus identity-keyed deterministic draws for values
// that must stay stable for an entity without being persisted.
package rng

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// FixedInt returns an integer in [min, max] derived deterministically from
// seed. The same seed always yields the same value, independent of any
// other random state in the process. Used for per-entity values (wound
// thresholds, skill values, crit ratings) that look random but must
// reproduce identically on every call.
func FixedInt(seed string, min, max int) int {
	h := fnv.New128a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum(nil)
	hi := binary.BigEndian.Uint64(sum[:8])
	lo := binary.BigEndian.Uint64(sum[8:])
	r := rand.New(rand.NewPCG(hi, lo))
	return min + r.IntN(max-min+1)
}

// RandomOrder returns a new slice with the elements of xs in a random order.
// xs itself is not modified.
func RandomOrder[T any](r *rand.Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sample returns k distinct elements of xs, uniformly chosen.
// Panics if k > len(xs); callers size their pools accordingly.
func Sample[T any](r *rand.Rand, xs []T, k int) []T {
	if k > len(xs) {
		panic("rng: sample size exceeds population")
	}
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(xs))[:k] {
		out = append(out, xs[i])
	}
	return out
}

// SelectWeighted picks one element of xs with the given relative weights.
// Weights must be positive and len(weights) == len(xs).
func SelectWeighted[T any](r *rand.Rand, xs []T, weights []int) T {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := r.IntN(total)
	for i, w := range weights {
		if n < w {
			return xs[i]
		}
		n -= w
	}
	return xs[len(xs)-1]
}

// NormalInt returns an integer in [0, 100] following an approximately
// normal distribution centered on 50.
func NormalInt(r *rand.Rand) int {
	target := r.Float64()
	for i, c := range normalCum {
		if target < c {
			return i
		}
	}
	return len(normalCum) - 1
}

// Cumulative weights for NormalInt, indexed 0..100. NORM.DIST(i, 50, 20),
// normalized so the final entry is 1.
var normalCum = []float64{
	0.00624846621,
	0.007187442347,
	0.008248757951,
	0.009445358047,
	0.01079111926,
	0.01230085686,
	0.01399032274,
	0.01587619324,
	0.01797604579,
	0.0203083233,
	0.02289228538,
	0.02574794565,
	0.02889599427,
	0.03235770532,
	0.0361548285,
	0.04030946515,
	0.04484392855,
	0.04978058883,
	0.05514170322,
	0.06094923234,
	0.06722464381,
	0.0739887047,
	0.08126126449,
	0.08906103063,
	0.09740533914,
	0.1063099227,
	0.1157886792,
	0.1258534434,
	0.1365137657,
	0.1477767002,
	0.1596466059,
	0.1721249647,
	0.1852102188,
	0.1988976308,
	0.2131791699,
	0.2280434257,
	0.2434755539,
	0.2594572535,
	0.2759667791,
	0.2929789883,
	0.3104654251,
	0.3283944399,
	0.346731344,
	0.3654386002,
	0.3844760454,
	0.4038011443,
	0.423369272,
	0.4431340216,
	0.4630475329,
	0.4830608403,
	0.5031242331,
	0.5231876259,
	0.5432009333,
	0.5631144446,
	0.5828791942,
	0.6024473219,
	0.6217724208,
	0.640809866,
	0.6595171222,
	0.6778540264,
	0.6957830411,
	0.713269478,
	0.7302816871,
	0.7467912127,
	0.7627729123,
	0.7782050405,
	0.7930692963,
	0.8073508354,
	0.8210382474,
	0.8341235015,
	0.8466018603,
	0.858471766,
	0.8697347005,
	0.8803950228,
	0.890459787,
	0.8999385435,
	0.9088431271,
	0.9171874356,
	0.9249872017,
	0.9322597615,
	0.9390238224,
	0.9452992339,
	0.951106763,
	0.9564678774,
	0.9614045377,
	0.9659390011,
	0.9700936377,
	0.9738907609,
	0.9773524719,
	0.9805005206,
	0.9833561808,
	0.9859401429,
	0.9882724204,
	0.990372273,
	0.9922581435,
	0.9939476094,
	0.9954573469,
	0.9968031082,
	0.9979997083,
	0.9990610239,
	1.0,
}
