// SPDX-License-Identifier: MIT

// Package matrix_test: concurrent readers over shared immutable values.
package matrix_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs the heavier kernels from many goroutines over
// the same matrix and checks every goroutine sees the same result.
// Run with -race to detect hidden writes.
func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	const workers = 16
	m := MarkerMatrix()
	want := m.Determinant().String()

	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.Minors()
			_ = m.MultiplyMatrix(m.Transpose())
			results[i] = m.Determinant().String()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, want, got, "worker %d", i)
	}
}
