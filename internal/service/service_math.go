package service

import "context"

type mathService struct{}

// NewMathService returns the stateless arithmetic service.
func NewMathService() MathService {
	return mathService{}
}

// Sum returns the sum of numbers; an empty list sums to 0.
func (mathService) Sum(_ context.Context, numbers []float64) float64 {
	var total float64
	for _, n := range numbers {
		total += n
	}
	return total
}

// Product returns the product of numbers. An empty list yields 0, not the
// multiplicative identity.
func (mathService) Product(_ context.Context, numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}

	total := 1.0
	for _, n := range numbers {
		total *= n
	}
	return total
}
