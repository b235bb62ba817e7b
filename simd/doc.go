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

// Package simd is the IBM VSX vector engine used by the analysis kernels.
//
// It exposes fixed-width value types that mirror the 128-bit VSX register:
//
//   - Float32x4 with its integer twin Int32x4 and masks Mask32x4/IntMask32x4
//   - Float64x2 with its integer twin Int32x2 and masks Mask64x2/IntMask32x2
//
// Every operation is a pure function of its operands, built from the
// instruction functions in package vsx. The constants in caps.go describe
// what the engine offers; kernels check them before using FMA, unaligned
// memory access or the SIMD4 profile (package simd4).
//
// # Target and primitives
//
// The element order inside a register depends on the byte order of the
// build (see Target). A few operations have two implementations, a compiler
// builtin and an equivalent hand-written instruction sequence; Primitives
// selects between them. Both are chosen at init from the build, the
// processor (internal/cpu) and two environment variables:
//
//	GMX_SIMD_ISA=power7|power8|power9   override the detected ISA level
//	GMX_SIMD_GENERIC_PRIMITIVES=1       use every fallback sequence
//
// An invalid or impossible GMX_SIMD_ISA (power7 on a little-endian build,
// an unknown name) is ignored at init: the engine starts on POWER8 with the
// native layout, GMX_SIMD_GENERIC_PRIMITIVES still applies, and InitError
// reports why the override was dropped.
//
// Configure replaces both for tools and tests. Vectors must not be kept
// across a Configure call that changes the layout.
//
// # Numeric behavior
//
// NaN handling in Min/Max, overflow in packed integer arithmetic and
// out-of-range float to int conversion follow the VSX instructions and are
// never reported. Single precision rounds ties to even, double precision
// rounds ties away from zero.
package simd
