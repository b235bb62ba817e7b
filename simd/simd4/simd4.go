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

// Package simd4 is the fixed 4-wide single-precision profile used for
// 3-component geometry (coordinates, forces, box vectors). Lane 3 is
// padding. The types are the simd single-precision types under shorter
// names, integer twin included; the constructors in simd4_gen.go forward to
// the simd package.
package simd4

//go:generate go run ../../cmd/simd4gen -out simd4_gen.go

import "github.com/alexxy/gromacs/simd"

const (
	// Width is the number of lanes in a Float.
	Width = 4

	HaveFloat  = simd.Simd4HaveFloat
	HaveDouble = simd.Simd4HaveDouble
)

type (
	// Float holds x, y, z and one padding lane.
	Float = simd.Float32x4

	// Bool is the lane mask produced by comparing two Float values.
	Bool = simd.Mask32x4

	// Int is the integer twin of Float, used for conversions and index
	// arithmetic on the same four lanes.
	Int = simd.Int32x4

	// IntBool is the lane mask produced by comparing two Int values.
	IntBool = simd.IntMask32x4
)

// DotProduct3 returns a.x*b.x + a.y*b.y + a.z*b.z.
//
// All four lanes of the product are summed, so lane 3 of a or b must be
// zero (or the product in lane 3 otherwise zero) or the result includes it.
// Load3 builds vectors that satisfy this.
func DotProduct3(a, b Float) float32 {
	return a.Mul(b).ReduceSum()
}

// Load3 loads x, y and z from s and clears the padding lane. It reads only
// s[0:3].
func Load3(s []float32) Float {
	_ = s[2]
	return LoadUFloat([]float32{s[0], s[1], s[2], 0})
}

// Store3 writes x, y and z to s[0:3] without touching s[3].
func Store3(v Float, s []float32) {
	_ = s[2]
	s[0], s[1], s[2] = v.Get(0), v.Get(1), v.Get(2)
}
