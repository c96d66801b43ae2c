package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMathService(t *testing.T) {
	svc := NewMathService()
	ctx := context.Background()

	tests := []struct {
		name        string
		numbers     []float64
		wantSum     float64
		wantProduct float64
	}{
		{name: "several", numbers: []float64{1, 2, 3, 4}, wantSum: 10, wantProduct: 24},
		{name: "empty", numbers: []float64{}, wantSum: 0, wantProduct: 0},
		{name: "nil", numbers: nil, wantSum: 0, wantProduct: 0},
		{name: "single", numbers: []float64{42}, wantSum: 42, wantProduct: 42},
		{name: "negative and fractional", numbers: []float64{-1.5, 2}, wantSum: 0.5, wantProduct: -3},
		{name: "contains zero", numbers: []float64{5, 0, 7}, wantSum: 12, wantProduct: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantSum, svc.Sum(ctx, tt.numbers), 1e-9)
			assert.InDelta(t, tt.wantProduct, svc.Product(ctx, tt.numbers), 1e-9)
		})
	}
}

func TestGreetService(t *testing.T) {
	svc := NewGreetService()
	ctx := context.Background()

	assert.Equal(t, "Hello, Javi!", svc.Greet(ctx, "Javi"))
	assert.Equal(t, "Hello, stranger!", svc.Greet(ctx, ""))
}
