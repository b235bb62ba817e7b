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

// Xxsldwi shifts the 256-bit concatenation a||b left by shw words and keeps
// the high 128 bits. With a == b it rotates the register left by shw words.
func Xxsldwi(a, b Reg, shw uint) Reg {
	var r Reg
	for i := range 4 {
		k := i + int(shw&3)
		if k < 4 {
			r.SetWord(i, a.Word(k))
		} else {
			r.SetWord(i, b.Word(k-4))
		}
	}
	return r
}

// Xxpermdi selects doubleword dm>>1 of a and doubleword dm&1 of b.
func Xxpermdi(a, b Reg, dm uint) Reg {
	var r Reg
	r.SetDword(0, a.Dword(int(dm>>1)&1))
	r.SetDword(1, b.Dword(int(dm)&1))
	return r
}

// Vmrghw interleaves the high words: {a0, b0, a1, b1}.
func Vmrghw(a, b Reg) Reg {
	var r Reg
	r.SetWord(0, a.Word(0))
	r.SetWord(1, b.Word(0))
	r.SetWord(2, a.Word(1))
	r.SetWord(3, b.Word(1))
	return r
}

// Vmrglw interleaves the low words: {a2, b2, a3, b3}.
func Vmrglw(a, b Reg) Reg {
	var r Reg
	r.SetWord(0, a.Word(2))
	r.SetWord(1, b.Word(2))
	r.SetWord(2, a.Word(3))
	r.SetWord(3, b.Word(3))
	return r
}

// Xxspltw replicates word uim of a into every word.
func Xxspltw(a Reg, uim uint) Reg {
	return Splat32(a.Word(int(uim & 3)))
}

// MergeHigh is vec_mergeh in element order: {a[0], b[0], a[1], b[1]}.
//
// Little-endian element 0 sits in the low hardware word, so the element
// "high" half is produced by vmrglw with swapped operands.
func MergeHigh(l Layout, a, b Reg) Reg {
	if l == LittleEndian {
		return Vmrglw(b, a)
	}
	return Vmrghw(a, b)
}

// MergeLow is vec_mergel in element order: {a[2], b[2], a[3], b[3]}.
func MergeLow(l Layout, a, b Reg) Reg {
	if l == LittleEndian {
		return Vmrghw(b, a)
	}
	return Vmrglw(a, b)
}

// RotateElements returns x with element i taken from element (i+n)&3.
func RotateElements(l Layout, x Reg, n uint) Reg {
	if l == LittleEndian {
		return Xxsldwi(x, x, (4-n)&3)
	}
	return Xxsldwi(x, x, n&3)
}
