package shade

import (
	"fmt"
)

// checkErrors rolls up an error channel into a single error.
func checkErrors(errs <-chan error) error {
	var ferr error

	for err := range errs {
		if err == nil {
			continue
		} else if ferr == nil {
			ferr = err
		} else {
			ferr = fmt.Errorf("%w; %v", ferr, err)
		}
	}

	return ferr
}

// clip clips a value to the range [min, max].
func clip(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clamp01(x float64) float64 {
	return clip(x, 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
