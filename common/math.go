package common

// Lerp moves a toward b by the fraction t. Applied once per frame it is a
// first-order exponential smoother.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
