package service

import (
	"context"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InQaaaaGit/gcd_form.git/internal/models"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		req     models.GcdRequest
		want    models.GcdResult
		wantErr error
	}{
		{
			name: "Common divisor",
			req:  models.GcdRequest{N: 48, M: 18},
			want: models.GcdResult{N: 48, M: 18, Result: 6},
		},
		{
			name: "Coprime numbers",
			req:  models.GcdRequest{N: 17, M: 5},
			want: models.GcdResult{N: 17, M: 5, Result: 1},
		},
		{
			name:    "Zero n",
			req:     models.GcdRequest{N: 0, M: 5},
			wantErr: ErrZeroOperand,
		},
		{
			name:    "Zero m",
			req:     models.GcdRequest{N: 5, M: 0},
			wantErr: ErrZeroOperand,
		},
		{
			name:    "Both zero",
			req:     models.GcdRequest{},
			wantErr: ErrZeroOperand,
		},
	}

	svc := NewGcdService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Нулевые аргументы не должны доходить до gcd.GCD, иначе тест упадёт с паникой
			got, err := svc.Compute(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, models.GcdResult{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeConcurrentAccess(t *testing.T) {
	svc := NewGcdService()
	iterations := 100

	var wg sync.WaitGroup
	results := make([]uint64, iterations)

	wg.Add(iterations)
	for i := 0; i < iterations; i++ {
		go func(i int) {
			defer wg.Done()
			res, err := svc.Compute(context.Background(), models.GcdRequest{N: uint64(i+1) * 6, M: 18})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = res.Result
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		n := uint64(i+1) * 6
		want := uint64(6)
		if n%18 == 0 {
			want = 18
		}
		assert.Equal(t, want, got, "n=%d", n)
	}
}
