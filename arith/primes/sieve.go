// Package primes implements the primality layer: a linear sieve, trial
// division, Miller-Rabin, the strong Lucas test, the composite Baillie-PSW
// test, and Shawe-Taylor provable prime generation.
package primes

// sieve16 holds every prime <= 65536, used both directly (primality below
//2^16, trial division below 2^32) and as the fixed witness-base list for
// miller_rabin_quick.
var sieve16 = eulerSieve(65536)

// eulerSieve returns every prime <= n using the linear Euler sieve: each
// composite is marked exactly once, at its smallest prime factor, and the
// inner loop breaks as soon as it reaches that factor.
func eulerSieve(n int) []int64 {
	composite := make([]bool, n+1)
	var list []int64
	for i := 2; i <= n; i++ {
		if !composite[i] {
			list = append(list, int64(i))
		}
		for _, p := range list {
			ip := int64(i) * p
			if ip > int64(n) {
				break
			}
			composite[ip] = true
			if int64(i)%p == 0 {
				break
			}
		}
	}
	return list
}

// Sieve returns every prime <= n using the linear Euler sieve described
// above. Sieve(65536) returns a copy of the precomputed table; any other n
// is sieved afresh. This package itself only uses the precomputed table
// (IsPrime trial-divides by it below 2^32 and uses Miller-Rabin above).
func Sieve(n int) []int64 {
	if n <= 65536 {
		// reuse the precomputed table when possible instead of re-sieving
		if n == 65536 {
			out := make([]int64, len(sieve16))
			copy(out, sieve16)
			return out
		}
		return eulerSieve(n)
	}
	return eulerSieve(n)
}
