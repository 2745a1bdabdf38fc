// Package prime provides the primality predicate behind the digit-sum rule.
package prime

// IsPrime reports whether n is prime.
//
// Zero, one, and all negative numbers are not prime. Trial division up to
// √n is sufficient here: the inputs are password digit sums, which stay
// well under a few hundred for any realistic text.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2 and 3
	}
	if n%2 == 0 {
		return false
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
