package gtsago

import "gonum.org/v1/gonum/stat/distuv"

// clopperPearson returns the two-sided Clopper-Pearson confidence
// interval on a binomial proportion estimated from successes out of n
// trials, at the given per-bound significance level alpha (e.g.
// alpha = 0.005 on each side yields a two-sided 99% interval, matching
// gtsa.hpp's SIGNIFICANCE_LEVEL passed undivided into boost's
// find_lower_bound_on_p/find_upper_bound_on_p). successes may be
// fractional (the Harness counts a draw as half a success), the same
// generalization boost::math::binomial_distribution's
// find_lower/upper_bound_on_p apply via the incomplete beta function.
//
// The interval is the standard inversion of the binomial CDF: the lower
// bound is the alpha quantile of Beta(successes, n-successes+1), the
// upper bound is the 1-alpha quantile of Beta(successes+1,
// n-successes), with the degenerate endpoints at successes == 0 or
// successes == n.
func clopperPearson(successes, n float64, alpha float64) (lower, upper float64) {
	if n <= 0 {
		return 0, 1
	}
	lower = 0
	if successes > 0 {
		lower = distuv.Beta{Alpha: successes, Beta: n - successes + 1}.Quantile(alpha)
	}
	upper = 1
	if successes < n {
		upper = distuv.Beta{Alpha: successes + 1, Beta: n - successes}.Quantile(1 - alpha)
	}
	return lower, upper
}
