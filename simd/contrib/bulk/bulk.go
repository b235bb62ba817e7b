// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bulk provides slice kernels built on the simd engine. Each kernel
// runs full vectors through the engine and finishes the remainder with
// scalar code.
package bulk

import (
	"github.com/alexxy/gromacs/simd"
	"github.com/alexxy/gromacs/simd/contrib/workerpool"
)

// batchGrain is the number of rows a worker takes at a time in DotBatch.
const batchGrain = 16

// Dot returns the dot product of a and b over the shorter of the two.
func Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	return float32(dot[simd.Float32x4](a[:n], b[:n]))
}

// DotBatch sets out[i] to Dot(queries[i], keys[i]) for every i below
// min(len(queries), len(keys), len(out)). Rows may differ in length, so
// they are handed out in small chunks to whichever worker of pool is free.
// A nil pool runs on the calling goroutine.
func DotBatch(pool *workerpool.Pool, queries, keys [][]float32, out []float32) {
	n := min(len(queries), len(keys), len(out))
	kernel := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = Dot(queries[i], keys[i])
		}
	}
	if pool == nil {
		kernel(0, n)
		return
	}
	pool.Chunks(n, batchGrain, kernel)
}

// DotFloat64 is Dot for float64 slices.
func DotFloat64(a, b []float64) float64 {
	n := min(len(a), len(b))
	return dot[simd.Float64x2](a[:n], b[:n])
}

// Sum returns the sum of s.
func Sum(s []float32) float32 {
	return float32(sum[simd.Float32x4](s))
}

// SumFloat64 returns the sum of s.
func SumFloat64(s []float64) float64 {
	return sum[simd.Float64x2](s)
}

// MulFloat64 sets dst[i] = a[i]*b[i] for every i all three slices share.
func MulFloat64(dst, a, b []float64) {
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+simd.DoubleWidth <= n; i += simd.DoubleWidth {
		va := simd.LoadFloat64x2(a[i:])
		va.Mul(simd.LoadFloat64x2(b[i:])).Store(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func dot[V simd.Real[V], S simd.Scalar](a, b []S) float64 {
	lanes := simd.Lanes[V]()
	acc := simd.Set[V](0)
	i := 0
	for ; i+lanes <= len(a); i += lanes {
		acc = simd.Load[V](a[i:]).MulAdd(simd.Load[V](b[i:]), acc)
	}
	total := simd.ReduceSum(acc)
	for ; i < len(a); i++ {
		total += float64(a[i]) * float64(b[i])
	}
	return total
}

func sum[V simd.Real[V], S simd.Scalar](s []S) float64 {
	lanes := simd.Lanes[V]()
	acc := simd.Set[V](0)
	i := 0
	for ; i+lanes <= len(s); i += lanes {
		acc = acc.Add(simd.Load[V](s[i:]))
	}
	total := simd.ReduceSum(acc)
	for ; i < len(s); i++ {
		total += float64(s[i])
	}
	return total
}
