package countable

import "math"

// nChooseK returns the binomial coefficient C(n, k) as a float,
// using the multiplicative recurrence C(n,k) = C(n,k-1)·(n-k+1)/k.
func nChooseK(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	// C(n,k) == C(n,n-k)
	if k > n/2 {
		k = n - k
	}

	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-i+1) / float64(i)
	}
	return c
}

// binomialCDF returns the probability of fewer than limit successes in n
// trials with success probability p: Σ C(n,k)·p^k·(1-p)^(n-k) for k in [0, limit).
func binomialCDF(n, limit int, p float64) float64 {
	var sum float64
	for k := 0; k < limit && k <= n; k++ {
		sum += nChooseK(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
	}
	return sum
}
