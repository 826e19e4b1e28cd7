package domain

import m "scanspec.dev/pkg/scanspec/internal/model"

// passRate returns the share of passed examples. Skipped examples are left
// out of the denominator; with nothing to count the rate is 1.
func passRate(reports []m.Report) float64 {
	passed := 0
	total := 0

	for _, report := range reports {
		p, f := report.Counts()
		passed += p
		total += p + f
	}

	if total == 0 {
		return 1
	}

	return float64(passed) / float64(total)
}
