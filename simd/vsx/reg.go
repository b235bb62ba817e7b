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

// Package vsx models the 128-bit IBM VSX/VMX vector register and the
// instructions the simd engine is built from.
//
// A Reg always holds its bytes in hardware order: byte 0 is the most
// significant byte of word 0, exactly as the ISA numbers them. Instruction
// functions (Xxsldwi, Vmrghw, Xvcvspdp, ...) follow the ISA definitions in
// that numbering and are therefore independent of the memory byte order.
//
// What does depend on byte order is which hardware word holds vector
// element i. On big-endian targets element i is word i; on little-endian
// targets the element numbering runs right to left, so element i is word
// 3-i (doubleword 1-i). Layout captures that mapping and is taken by every
// helper that speaks in element order (FromFloat32s, MergeHigh, VecExtract).
package vsx

import (
	"encoding/binary"
	"math"
)

// Layout selects how vector elements map onto hardware words.
type Layout uint8

const (
	// BigEndian numbers elements left to right (element i is word i).
	BigEndian Layout = iota

	// LittleEndian numbers elements right to left (element i is word 3-i).
	LittleEndian
)

// String returns "big-endian" or "little-endian".
func (l Layout) String() string {
	switch l {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return "unknown"
	}
}

// Layouts lists every supported layout, for table-driven tests and tools.
func Layouts() []Layout {
	return []Layout{BigEndian, LittleEndian}
}

// WordIndex returns the hardware word holding 32-bit element e.
func (l Layout) WordIndex(e int) int {
	if l == LittleEndian {
		return 3 - e
	}
	return e
}

// DwordIndex returns the hardware doubleword holding 64-bit element e.
func (l Layout) DwordIndex(e int) int {
	if l == LittleEndian {
		return 1 - e
	}
	return e
}

// Reg is one 128-bit vector-scalar register in hardware byte order.
type Reg [16]byte

// Word returns hardware word k (0..3).
func (r Reg) Word(k int) uint32 {
	return binary.BigEndian.Uint32(r[4*k:])
}

// SetWord sets hardware word k.
func (r *Reg) SetWord(k int, w uint32) {
	binary.BigEndian.PutUint32(r[4*k:], w)
}

// Dword returns hardware doubleword k (0..1).
func (r Reg) Dword(k int) uint64 {
	return binary.BigEndian.Uint64(r[8*k:])
}

// SetDword sets hardware doubleword k.
func (r *Reg) SetDword(k int, d uint64) {
	binary.BigEndian.PutUint64(r[8*k:], d)
}

// Half returns hardware halfword k (0..7).
func (r Reg) Half(k int) uint16 {
	return binary.BigEndian.Uint16(r[2*k:])
}

// FromWords builds a register from four 32-bit elements in element order.
func FromWords(l Layout, e [4]uint32) Reg {
	var r Reg
	for i, w := range e {
		r.SetWord(l.WordIndex(i), w)
	}
	return r
}

// Words returns the four 32-bit elements in element order.
func (r Reg) Words(l Layout) [4]uint32 {
	var e [4]uint32
	for i := range e {
		e[i] = r.Word(l.WordIndex(i))
	}
	return e
}

// FromDwords builds a register from two 64-bit elements in element order.
func FromDwords(l Layout, e [2]uint64) Reg {
	var r Reg
	for i, d := range e {
		r.SetDword(l.DwordIndex(i), d)
	}
	return r
}

// Dwords returns the two 64-bit elements in element order.
func (r Reg) Dwords(l Layout) [2]uint64 {
	var e [2]uint64
	for i := range e {
		e[i] = r.Dword(l.DwordIndex(i))
	}
	return e
}

// FromFloat32s builds a register holding four float32 elements.
func FromFloat32s(l Layout, f [4]float32) Reg {
	var w [4]uint32
	for i, x := range f {
		w[i] = math.Float32bits(x)
	}
	return FromWords(l, w)
}

// Float32s returns the four float32 elements in element order.
func (r Reg) Float32s(l Layout) [4]float32 {
	var f [4]float32
	for i, w := range r.Words(l) {
		f[i] = math.Float32frombits(w)
	}
	return f
}

// FromInt32s builds a register holding four int32 elements.
func FromInt32s(l Layout, v [4]int32) Reg {
	var w [4]uint32
	for i, x := range v {
		w[i] = uint32(x)
	}
	return FromWords(l, w)
}

// Int32s returns the four int32 elements in element order.
func (r Reg) Int32s(l Layout) [4]int32 {
	var v [4]int32
	for i, w := range r.Words(l) {
		v[i] = int32(w)
	}
	return v
}

// FromFloat64s builds a register holding two float64 elements.
func FromFloat64s(l Layout, f [2]float64) Reg {
	return FromDwords(l, [2]uint64{math.Float64bits(f[0]), math.Float64bits(f[1])})
}

// Float64s returns the two float64 elements in element order.
func (r Reg) Float64s(l Layout) [2]float64 {
	d := r.Dwords(l)
	return [2]float64{math.Float64frombits(d[0]), math.Float64frombits(d[1])}
}

// Splat32 replicates w into all four words (vec_splats on a 32-bit scalar).
// The result is the same under either layout.
func Splat32(w uint32) Reg {
	var r Reg
	for k := range 4 {
		r.SetWord(k, w)
	}
	return r
}

// Splat64 replicates d into both doublewords.
func Splat64(d uint64) Reg {
	var r Reg
	r.SetDword(0, d)
	r.SetDword(1, d)
	return r
}

// SplatFloat32 replicates a float32 into all four words.
func SplatFloat32(f float32) Reg {
	return Splat32(math.Float32bits(f))
}

// SplatFloat64 replicates a float64 into both doublewords.
func SplatFloat64(f float64) Reg {
	return Splat64(math.Float64bits(f))
}
