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

import "math"

// Conversions between the single/double and integer formats. The mixed-width
// ones read or write hardware words 0 and 2, the high half of each
// doubleword.

// Vcfsx converts signed words to single precision (vec_ctf with scale 0).
func Vcfsx(a Reg) Reg {
	var r Reg
	for k := range 4 {
		r.SetWord(k, math.Float32bits(float32(int32(a.Word(k)))))
	}
	return r
}

// Xvcvspsxws truncates single-precision words to signed words (vec_cts with
// scale 0). Out-of-range values saturate and NaN becomes math.MinInt32.
func Xvcvspsxws(a Reg) Reg {
	var r Reg
	for k := range 4 {
		x := float64(math.Float32frombits(a.Word(k)))
		r.SetWord(k, uint32(truncSat32(x)))
	}
	return r
}

// Xvcvspdp widens single-precision words 0 and 2 into doublewords 0 and 1.
func Xvcvspdp(a Reg) Reg {
	var r Reg
	for k := range 2 {
		x := math.Float32frombits(a.Word(2 * k))
		r.SetDword(k, math.Float64bits(float64(x)))
	}
	return r
}

// Xvcvdpsp narrows each doubleword to single precision. The result lands in
// both words of the doubleword.
func Xvcvdpsp(a Reg) Reg {
	var r Reg
	for k := range 2 {
		w := math.Float32bits(float32(math.Float64frombits(a.Dword(k))))
		r.SetWord(2*k, w)
		r.SetWord(2*k+1, w)
	}
	return r
}

// Xvcvsxwdp converts signed words 0 and 2 into double-precision doublewords.
func Xvcvsxwdp(a Reg) Reg {
	var r Reg
	for k := range 2 {
		r.SetDword(k, math.Float64bits(float64(int32(a.Word(2*k)))))
	}
	return r
}

// Xvcvdpsxws truncates each doubleword to a signed word, saturating like
// Xvcvspsxws. The result lands in both words of the doubleword.
func Xvcvdpsxws(a Reg) Reg {
	var r Reg
	for k := range 2 {
		w := uint32(truncSat32(math.Float64frombits(a.Dword(k))))
		r.SetWord(2*k, w)
		r.SetWord(2*k+1, w)
	}
	return r
}

func truncSat32(x float64) int32 {
	switch {
	case math.IsNaN(x):
		return math.MinInt32
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	}
	return int32(x)
}
