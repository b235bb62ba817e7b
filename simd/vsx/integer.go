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

package vsx

// This file holds the VMX integer and logical instructions. All of them act
// on whole words or bytes and never look at the element layout.

func wordwise(a, b Reg, op func(x, y uint32) uint32) Reg {
	var r Reg
	for k := range 4 {
		r.SetWord(k, op(a.Word(k), b.Word(k)))
	}
	return r
}

func bytewise(a, b Reg, op func(x, y byte) byte) Reg {
	var r Reg
	for i := range r {
		r[i] = op(a[i], b[i])
	}
	return r
}

func boolWord(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

// Vand is a & b.
func Vand(a, b Reg) Reg {
	return bytewise(a, b, func(x, y byte) byte { return x & y })
}

// Vor is a | b.
func Vor(a, b Reg) Reg {
	return bytewise(a, b, func(x, y byte) byte { return x | y })
}

// Vxor is a ^ b.
func Vxor(a, b Reg) Reg {
	return bytewise(a, b, func(x, y byte) byte { return x ^ y })
}

// Vandc is a & ^b (vec_andc). Note the complemented operand is the second.
func Vandc(a, b Reg) Reg {
	return bytewise(a, b, func(x, y byte) byte { return x &^ y })
}

// Xxsel takes bits of b where c is set and bits of a elsewhere (vec_sel).
func Xxsel(a, b, c Reg) Reg {
	var r Reg
	for i := range r {
		r[i] = a[i]&^c[i] | b[i]&c[i]
	}
	return r
}

// Vadduwm adds words modulo 2^32.
func Vadduwm(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return x + y })
}

// Vsubuwm subtracts words modulo 2^32.
func Vsubuwm(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return x - y })
}

// Vmuluwm multiplies words modulo 2^32. POWER8 and later only.
func Vmuluwm(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return x * y })
}

// Vmulesh multiplies the signed even (high-order) halfword of each word,
// producing full 32-bit products.
func Vmulesh(a, b Reg) Reg {
	var r Reg
	for k := range 4 {
		x := int32(int16(a.Half(2 * k)))
		y := int32(int16(b.Half(2 * k)))
		r.SetWord(k, uint32(x*y))
	}
	return r
}

// Vmulosh multiplies the signed odd (low-order) halfword of each word,
// producing full 32-bit products.
func Vmulosh(a, b Reg) Reg {
	var r Reg
	for k := range 4 {
		x := int32(int16(a.Half(2*k + 1)))
		y := int32(int16(b.Half(2*k + 1)))
		r.SetWord(k, uint32(x*y))
	}
	return r
}

// MulEven is vec_mule on signed halfwords in element order. On
// little-endian targets the element-even halfword is the hardware-odd one.
func MulEven(l Layout, a, b Reg) Reg {
	if l == LittleEndian {
		return Vmulosh(a, b)
	}
	return Vmulesh(a, b)
}

// MulOdd is vec_mulo on signed halfwords in element order.
func MulOdd(l Layout, a, b Reg) Reg {
	if l == LittleEndian {
		return Vmulesh(a, b)
	}
	return Vmulosh(a, b)
}

// Vslw shifts each word of a left by the low 5 bits of the matching word of b.
func Vslw(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return x << (y & 31) })
}

// Vsrw shifts each word of a right, filling with zeros.
func Vsrw(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return x >> (y & 31) })
}

// Vsraw shifts each word of a right, replicating the sign bit.
func Vsraw(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return uint32(int32(x) >> (y & 31)) })
}

// Vcmpequw sets a word to all ones where a == b.
func Vcmpequw(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return boolWord(x == y) })
}

// Vcmpgtsw sets a word to all ones where int32(a) > int32(b).
func Vcmpgtsw(a, b Reg) Reg {
	return wordwise(a, b, func(x, y uint32) uint32 { return boolWord(int32(x) > int32(y)) })
}

// AnyNe reports whether any word of a differs from the matching word of b
// (vec_any_ne, the CR6 test of vcmpequw.).
func AnyNe(a, b Reg) bool {
	for k := range 4 {
		if a.Word(k) != b.Word(k) {
			return true
		}
	}
	return false
}
